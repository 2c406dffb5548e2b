package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vhgravatas/pos-analytics-api/infrastructure/repository"
	"github.com/vhgravatas/pos-analytics-api/internal/config"
	"github.com/vhgravatas/pos-analytics-api/internal/domain"
)

// Service implementa Reporter orquestrando as buscas na loja de dados e
// delegando toda a matemática ao Aggregator. As buscas são concorrentes, mas a
// agregação só começa depois que todas as coleções resolverem; não há
// agregação parcial nem streaming.
type Service struct {
	cfg          *config.Config
	saleRepo     repository.SaleRepository
	saleItemRepo repository.SaleItemRepository
	vendorRepo   repository.VendorRepository
	productRepo  repository.ProductRepository
	cashRepo     repository.CashMovementRepository
	aggregator   *Aggregator
	now          func() time.Time
}

func NewService(
	cfg *config.Config,
	saleRepo repository.SaleRepository,
	saleItemRepo repository.SaleItemRepository,
	vendorRepo repository.VendorRepository,
	productRepo repository.ProductRepository,
	cashRepo repository.CashMovementRepository,
	currency CurrencyFormatter,
) *Service {
	aggregator := NewAggregator(Options{
		LowStockThreshold: cfg.Reporting.LowStockThreshold,
		TopVendorsLimit:   cfg.Reporting.TopVendorsLimit,
		TopProductsLimit:  cfg.Reporting.TopProductsLimit,
	}, currency)

	return &Service{
		cfg:          cfg,
		saleRepo:     saleRepo,
		saleItemRepo: saleItemRepo,
		vendorRepo:   vendorRepo,
		productRepo:  productRepo,
		cashRepo:     cashRepo,
		aggregator:   aggregator,
		now:          time.Now,
	}
}

// WithClock troca a fonte do instante de referência (injetável para testes)
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// GenerateManagementReport busca as cinco coleções e compõe o relatório
// gerencial. Falha em qualquer busca falha a rodada inteira; o relatório nunca
// é emitido parcialmente.
func (s *Service) GenerateManagementReport(ctx context.Context) (*domain.ManagementReport, error) {
	inputs, err := s.fetchInputs(ctx)
	if err != nil {
		return nil, err
	}

	// Rodada abortável apenas na fase de busca; a agregação roda até o fim
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "rodada de agregação cancelada antes de iniciar")
	}

	report := s.aggregator.Aggregate(inputs, s.now())

	logrus.WithFields(logrus.Fields{
		"report_id":      report.ReportID,
		"sales_quantity": report.MonthMetrics.SalesQuantity,
		"total_revenue":  report.MonthMetrics.TotalRevenue,
	}).Info("Relatório gerencial composto")

	return report, nil
}

// GetWindowMetrics calcula as métricas das janelas de dia, semana e mês
func (s *Service) GetWindowMetrics(ctx context.Context) (*WindowMetricsResponse, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas")
	}

	items, err := s.saleItemRepo.ListSaleItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar itens de venda")
	}

	now := s.now()
	windows := ResolveWindows(now)

	normalized := NormalizeSales(sales, items)
	settled := FilterSettled(normalized)

	return &WindowMetricsResponse{
		Windows: windows,
		Day:     ComputeWindowMetrics(FilterByWindow(settled, windows.Day)),
		Week:    ComputeWindowMetrics(FilterByWindow(settled, windows.Week)),
		Month:   ComputeWindowMetrics(FilterByWindow(settled, windows.Month)),
		Pending: CountPending(normalized),
	}, nil
}

// GetVendorRanking monta o ranking completo de vendedores do mês corrente
func (s *Service) GetVendorRanking(ctx context.Context) ([]*domain.VendorRankingEntry, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas")
	}

	vendors, err := s.vendorRepo.ListVendors(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendedores")
	}

	monthSales := s.settledMonthSales(sales, nil)

	return RankVendors(monthSales, vendors), nil
}

// GetProductRanking monta o ranking dos produtos mais vendidos do mês corrente
func (s *Service) GetProductRanking(ctx context.Context) ([]*domain.ProductRankingEntry, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas")
	}

	items, err := s.saleItemRepo.ListSaleItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar itens de venda")
	}

	monthSales := s.settledMonthSales(sales, items)

	return TopProducts(RankProducts(monthSales), s.aggregator.opts.TopProductsLimit), nil
}

// GetStockAnalysis calcula os indicadores de saúde do estoque cruzando o
// catálogo com os produtos vendidos no mês corrente
func (s *Service) GetStockAnalysis(ctx context.Context) (*domain.StockAnalysis, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar produtos")
	}

	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas")
	}

	items, err := s.saleItemRepo.ListSaleItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar itens de venda")
	}

	monthSales := s.settledMonthSales(sales, items)

	return AnalyzeStock(products, RankProducts(monthSales), s.aggregator.opts.LowStockThreshold), nil
}

// settledMonthSales normaliza e filtra as vendas liquidadas do mês corrente
func (s *Service) settledMonthSales(sales []*domain.SaleRecord, items []*domain.SaleItem) []*domain.Sale {
	windows := ResolveWindows(s.now())
	settled := FilterSettled(NormalizeSales(sales, items))
	return FilterByWindow(settled, windows.Month)
}

// fetchInputs busca as cinco coleções concorrentemente e espera todas
// resolverem. Qualquer erro falha a rodada.
func (s *Service) fetchInputs(ctx context.Context) (*ReportInputs, error) {
	inputs := &ReportInputs{}

	var (
		salesErr    error
		itemsErr    error
		vendorsErr  error
		productsErr error
		cashErr     error
	)

	wg := sync.WaitGroup{}
	wg.Add(5)

	go func() {
		defer wg.Done()
		inputs.Sales, salesErr = s.saleRepo.ListSales(ctx)
	}()

	go func() {
		defer wg.Done()
		inputs.Items, itemsErr = s.saleItemRepo.ListSaleItems(ctx)
	}()

	go func() {
		defer wg.Done()
		inputs.Vendors, vendorsErr = s.vendorRepo.ListVendors(ctx)
	}()

	go func() {
		defer wg.Done()
		inputs.Products, productsErr = s.productRepo.ListProducts(ctx)
	}()

	go func() {
		defer wg.Done()
		inputs.Movements, cashErr = s.cashRepo.ListRecent(ctx, s.cfg.Reporting.CashMovementsLimit)
	}()

	wg.Wait()

	for _, err := range []error{salesErr, itemsErr, vendorsErr, productsErr, cashErr} {
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar dados para o relatório gerencial")
			return nil, errors.Wrap(err, "erro ao buscar dados da loja")
		}
	}

	return inputs, nil
}
