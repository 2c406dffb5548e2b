package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vhgravatas/pos-analytics-api/internal/usecases/reporting"
	"github.com/vhgravatas/pos-analytics-api/pkg/apiErrors"
)

// GetStockAnalysis retorna os indicadores de saúde do estoque
func GetStockAnalysis(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		analysis, err := service.GetStockAnalysis(r.Context())
		if err != nil {
			logrus.Error("Erro ao calcular análise de estoque:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular análise de estoque", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(analysis)
		if err != nil {
			logrus.Error("Erro ao enviar resposta da análise de estoque:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
