package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/internal/usecases/selling"
	"github.com/medgm/analytics-api/pkg/apiErrors"
	"github.com/medgm/analytics-api/pkg/log"
)

// CreateSale registra a venda sem gerar o lançamento financeiro
func CreateSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.NewSale
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao decodificar venda")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		sale, err := service.CreateSale(r.Context(), input)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao registrar venda")
			return
		}

		writeJSON(w, r, http.StatusCreated, sale)
	}
}

// RecordSaleLedgerEntry gera o lançamento da venda. Repetir a chamada devolve o lançamento existente.
func RecordSaleLedgerEntry(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		saleID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if saleID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da venda não fornecido", nil)
			return
		}

		record, created, err := service.RecordLedgerEntry(r.Context(), saleID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar lançamento da venda")
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		writeJSON(w, r, status, record)
	}
}
