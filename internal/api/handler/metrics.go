package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vhgravatas/pos-analytics-api/internal/usecases/reporting"
	"github.com/vhgravatas/pos-analytics-api/pkg/apiErrors"
)

// GetWindowMetrics retorna as métricas das janelas de dia, semana e mês
func GetWindowMetrics(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, err := service.GetWindowMetrics(r.Context())
		if err != nil {
			logrus.Error("Erro ao calcular métricas por janela:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular métricas por janela", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(metrics)
		if err != nil {
			logrus.Error("Erro ao enviar resposta das métricas:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
