package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vhgravatas/pos-analytics-api/internal/usecases/reporting"
	"github.com/vhgravatas/pos-analytics-api/pkg/apiErrors"
)

// GetVendorRanking retorna o ranking de vendedores do mês corrente
func GetVendorRanking(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ranking, err := service.GetVendorRanking(r.Context())
		if err != nil {
			logrus.Error("Erro ao buscar ranking de vendedores:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking de vendedores", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(ranking)
		if err != nil {
			logrus.Error("Erro ao enviar resposta do ranking de vendedores:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetProductRanking retorna os produtos mais vendidos do mês corrente
func GetProductRanking(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ranking, err := service.GetProductRanking(r.Context())
		if err != nil {
			logrus.Error("Erro ao buscar ranking de produtos:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking de produtos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(ranking)
		if err != nil {
			logrus.Error("Erro ao enviar resposta do ranking de produtos:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
