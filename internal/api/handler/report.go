package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vhgravatas/pos-analytics-api/infrastructure/repository"
	"github.com/vhgravatas/pos-analytics-api/internal/domain"
	"github.com/vhgravatas/pos-analytics-api/internal/usecases/reporting"
	"github.com/vhgravatas/pos-analytics-api/pkg/apiErrors"
	"github.com/vhgravatas/pos-analytics-api/pkg/utils"
)

// GetManagementReport compõe e retorna o relatório gerencial completo
func GetManagementReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.GenerateManagementReport(r.Context())
		if err != nil {
			logrus.Error("Erro ao compor relatório gerencial:", err)
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao compor relatório gerencial", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(report)
		if err != nil {
			logrus.Error("Erro ao enviar resposta do relatório:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetLatestReportSnapshot retorna o snapshot de relatório mais recente. O
// parâmetro opcional date (YYYY-MM-DD) busca o snapshot de um dia específico.
func GetLatestReportSnapshot(snapshotRepo repository.ReportSnapshotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var snapshot *domain.ReportSnapshot
		var err error

		dateStr := r.URL.Query().Get("date")
		if dateStr != "" {
			date, parseErr := utils.ParseDate(dateStr)
			if parseErr != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
				return
			}
			snapshot, err = snapshotRepo.GetByReferenceDate(r.Context(), *date)
		} else {
			snapshot, err = snapshotRepo.GetLatest(r.Context())
		}

		if err != nil {
			logrus.Error("Erro ao buscar snapshot de relatório:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar snapshot de relatório", nil)
			return
		}

		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrSnapshotNotFound, "Nenhum snapshot encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(snapshot)
		if err != nil {
			logrus.Error("Erro ao enviar resposta do snapshot:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
