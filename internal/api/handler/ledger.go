package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lumenaura/order-manager-api/internal/domain"
	"github.com/lumenaura/order-manager-api/internal/usecases/ledgering"
	"github.com/lumenaura/order-manager-api/pkg/apiErrors"
	"github.com/lumenaura/order-manager-api/pkg/utils"
)

// ListLedger lista os registros do ledger com filtros opcionais de status e período
func ListLedger(service ledgering.LedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseLedgerFilters(r)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Filtros inválidos. Datas devem estar no formato YYYY-MM-DD", nil)
			return
		}

		records, err := service.ListRecords(filters)
		if err != nil {
			logrus.Error("Erro ao listar registros do ledger:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar registros do ledger", nil)
			return
		}

		// Enviar resposta
		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(records)
		if err != nil {
			logrus.Error("Erro ao enviar resposta do ledger:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetLedgerSummary retorna os totais agregados do ledger
func GetLedgerSummary(service ledgering.LedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.GetSummary()
		if err != nil {
			logrus.Error("Erro ao buscar resumo do ledger:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar resumo do ledger", nil)
			return
		}

		// Enviar resposta
		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(summary)
		if err != nil {
			logrus.Error("Erro ao enviar resposta do resumo:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// RefundLedgerRecord marca um registro do ledger como reembolsado
func RefundLedgerRecord(service ledgering.LedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RefundLedgerRecord")

		lineID := httprouter.ParamsFromContext(r.Context()).ByName("line_id")
		if lineID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "line_id não fornecido", nil)
			return
		}

		record, err := service.MarkRefunded(lineID)
		if err != nil {
			if errors.Is(err, domain.ErrLedgerRecordNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrLedgerRecordNotFound, "Registro não encontrado no ledger", map[string]any{
					"line_id": lineID,
				})
				return
			}

			logrus.Error("Erro ao marcar registro como reembolsado:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao marcar registro como reembolsado", nil)
			return
		}

		// Enviar resposta com o registro atualizado
		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(record)
		if err != nil {
			logrus.Error("Erro ao enviar resposta do reembolso:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// parseLedgerFilters monta os filtros de listagem a partir da query string
func parseLedgerFilters(r *http.Request) (*domain.LedgerFilters, error) {
	filters := &domain.LedgerFilters{}

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := domain.LedgerStatus(statusStr)
		filters.Status = &status
	}

	if startDateStr := r.URL.Query().Get("start_date"); startDateStr != "" {
		startDate, err := utils.ParseDate(startDateStr)
		if err != nil {
			return nil, err
		}
		filters.StartDate = startDate
	}

	if endDateStr := r.URL.Query().Get("end_date"); endDateStr != "" {
		endDate, err := utils.ParseDate(endDateStr)
		if err != nil {
			return nil, err
		}
		filters.EndDate = endDate
	}

	return filters, nil
}
