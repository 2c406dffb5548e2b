package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vhgravatas/pos-analytics-api/infrastructure/repository/mocks"
	"github.com/vhgravatas/pos-analytics-api/internal/config"
	"github.com/vhgravatas/pos-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	saleRepo     *mocks.MockSaleRepository
	saleItemRepo *mocks.MockSaleItemRepository
	vendorRepo   *mocks.MockVendorRepository
	productRepo  *mocks.MockProductRepository
	cashRepo     *mocks.MockCashMovementRepository
}

func newServiceForTest(ctrl *gomock.Controller) (*Service, *serviceMocks) {
	m := &serviceMocks{
		saleRepo:     mocks.NewMockSaleRepository(ctrl),
		saleItemRepo: mocks.NewMockSaleItemRepository(ctrl),
		vendorRepo:   mocks.NewMockVendorRepository(ctrl),
		productRepo:  mocks.NewMockProductRepository(ctrl),
		cashRepo:     mocks.NewMockCashMovementRepository(ctrl),
	}

	cfg := &config.Config{
		Reporting: config.Reporting{
			LowStockThreshold:  5,
			TopVendorsLimit:    3,
			TopProductsLimit:   10,
			CashMovementsLimit: 50,
		},
	}

	service := NewService(cfg, m.saleRepo, m.saleItemRepo, m.vendorRepo, m.productRepo, m.cashRepo, nil).
		WithClock(func() time.Time {
			return time.Date(2025, time.March, 15, 18, 0, 0, 0, time.Local)
		})

	return service, m
}

func TestGenerateManagementReport(t *testing.T) {
	sales := []*domain.SaleRecord{
		{
			ID: "V1", CreatedAt: time.Date(2025, time.March, 15, 10, 0, 0, 0, time.Local),
			VendorName: "Ana", FinalAmount: 100.0, PaymentMode: "pix",
			Status: domain.SaleStatusActive,
		},
	}

	tests := []struct {
		name     string
		setup    func(m *serviceMocks)
		validate func(t *testing.T, report *domain.ManagementReport, err error)
	}{
		{
			name: "Compõe o relatório com as cinco coleções",
			setup: func(m *serviceMocks) {
				m.saleRepo.EXPECT().ListSales(gomock.Any()).Return(sales, nil)
				m.saleItemRepo.EXPECT().ListSaleItems(gomock.Any()).Return([]*domain.SaleItem{
					{ID: "I1", SaleID: "V1", ProductName: "Gravata Slim Azul", Quantity: 1, Subtotal: 100.0},
				}, nil)
				m.vendorRepo.EXPECT().ListVendors(gomock.Any()).Return([]*domain.Vendor{
					{ID: "F1", Name: "Ana", MonthlyTarget: floatPtr(1000.0)},
				}, nil)
				m.productRepo.EXPECT().ListProducts(gomock.Any()).Return([]*domain.Product{
					{ID: "P1", Name: "Gravata Slim Azul", Category: "Gravatas", UnitPrice: 89.90, CurrentStock: 10},
				}, nil)
				m.cashRepo.EXPECT().ListRecent(gomock.Any(), 50).Return(nil, nil)
			},
			validate: func(t *testing.T, report *domain.ManagementReport, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, report.ReportID)
				assert.Equal(t, 100.0, report.Summary.TotalRevenue)
				assert.Equal(t, 1, report.Summary.SalesQuantity)
				assert.Equal(t, "Ana", report.VendorPerformance[0].Name)
			},
		},
		{
			name: "Falha em qualquer busca falha a rodada inteira",
			setup: func(m *serviceMocks) {
				m.saleRepo.EXPECT().ListSales(gomock.Any()).Return(nil, errors.New("conexão recusada"))
				m.saleItemRepo.EXPECT().ListSaleItems(gomock.Any()).Return(nil, nil)
				m.vendorRepo.EXPECT().ListVendors(gomock.Any()).Return(nil, nil)
				m.productRepo.EXPECT().ListProducts(gomock.Any()).Return(nil, nil)
				m.cashRepo.EXPECT().ListRecent(gomock.Any(), 50).Return(nil, nil)
			},
			validate: func(t *testing.T, report *domain.ManagementReport, err error) {
				assert.Nil(t, report)
				assert.ErrorContains(t, err, "erro ao buscar dados da loja")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newServiceForTest(ctrl)
			tt.setup(m)

			report, err := service.GenerateManagementReport(context.Background())
			tt.validate(t, report, err)
		})
	}
}

func TestGetWindowMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceForTest(ctrl)

	m.saleRepo.EXPECT().ListSales(gomock.Any()).Return([]*domain.SaleRecord{
		{
			ID: "V1", CreatedAt: time.Date(2025, time.March, 15, 10, 0, 0, 0, time.Local),
			FinalAmount: 100.0, PaymentMode: "pix", Status: domain.SaleStatusActive,
		},
		{
			// Dentro do mês, fora da semana iniciada no domingo dia 9
			ID: "V2", CreatedAt: time.Date(2025, time.March, 3, 10, 0, 0, 0, time.Local),
			FinalAmount: 70.0, PaymentMode: "cartao", Status: domain.SaleStatusActive,
		},
		{
			ID: "V3", CreatedAt: time.Date(2025, time.March, 15, 11, 0, 0, 0, time.Local),
			FinalAmount: 80.0, PaymentMode: domain.PaymentModePending, Status: domain.SaleStatusActive,
		},
	}, nil)
	m.saleItemRepo.EXPECT().ListSaleItems(gomock.Any()).Return(nil, nil)

	response, err := service.GetWindowMetrics(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, response.Day.SalesQuantity)
	assert.Equal(t, 100.0, response.Day.TotalRevenue)
	assert.Equal(t, 1, response.Week.SalesQuantity)
	assert.Equal(t, 2, response.Month.SalesQuantity)
	assert.Equal(t, 170.0, response.Month.TotalRevenue)
	assert.Equal(t, 1, response.Pending.Count)
	assert.Equal(t, 80.0, response.Pending.Amount)
}

func TestGetVendorRanking_ErroNaBuscaDeVendas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceForTest(ctrl)

	m.saleRepo.EXPECT().ListSales(gomock.Any()).Return(nil, errors.New("conexão recusada"))

	entries, err := service.GetVendorRanking(context.Background())

	assert.Nil(t, entries)
	assert.ErrorContains(t, err, "erro ao buscar vendas")
}

func TestGetProductRanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceForTest(ctrl)

	m.saleRepo.EXPECT().ListSales(gomock.Any()).Return([]*domain.SaleRecord{
		{
			ID: "V1", CreatedAt: time.Date(2025, time.March, 10, 10, 0, 0, 0, time.Local),
			FinalAmount: 179.80, PaymentMode: "pix", Status: domain.SaleStatusActive,
		},
	}, nil)
	m.saleItemRepo.EXPECT().ListSaleItems(gomock.Any()).Return([]*domain.SaleItem{
		{ID: "I1", SaleID: "V1", ProductName: "Gravata Slim Azul", Quantity: 2, Subtotal: 179.80},
	}, nil)

	entries, err := service.GetProductRanking(context.Background())

	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "Gravata Slim Azul", entries[0].Name)
	assert.Equal(t, 2, entries[0].Quantity)
}

func TestGetStockAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceForTest(ctrl)

	m.productRepo.EXPECT().ListProducts(gomock.Any()).Return([]*domain.Product{
		{ID: "P1", Name: "Gravata Slim Azul", Category: "Gravatas", UnitPrice: 89.90, CurrentStock: 3},
	}, nil)
	m.saleRepo.EXPECT().ListSales(gomock.Any()).Return(nil, nil)
	m.saleItemRepo.EXPECT().ListSaleItems(gomock.Any()).Return(nil, nil)

	analysis, err := service.GetStockAnalysis(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, analysis.LowStockCount)
	assert.Equal(t, 1, analysis.NoTurnoverCount)
}
