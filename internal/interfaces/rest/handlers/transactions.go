package handlers

import (
	"net/http"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/application/services"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/interfaces/rest"
	"github.com/google/uuid"
)

// executeTransaction answers 200 with the recorded outcome, declines included
func (h *Handlers) executeTransaction(txnType domain.TransactionType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cc, err := rest.CallContext(r)
		if err != nil {
			rest.WriteError(w, err, h.logger)
			return
		}

		paymentID, err := rest.PathUUID(r, "paymentId")
		if err != nil {
			rest.WriteError(w, err, h.logger)
			return
		}

		var req TransactionRequest
		if err := rest.DecodeJSON(r, h.validate, &req); err != nil {
			rest.WriteError(w, err, h.logger)
			return
		}

		info, err := h.transactions.Execute(r.Context(), txnType, services.TransactionCommand{
			AccountID:       req.AccountID,
			PaymentID:       paymentID,
			TransactionID:   req.TransactionID,
			PaymentMethodID: req.PaymentMethodID,
			Amount:          req.Amount,
			Currency:        req.Currency,
			Properties:      req.Properties,
		}, cc)
		if err != nil {
			rest.WriteError(w, err, h.logger)
			return
		}

		rest.WriteJSON(w, http.StatusOK, info)
	}
}

func (h *Handlers) GetPaymentInfo(w http.ResponseWriter, r *http.Request) {
	cc, err := rest.CallContext(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	paymentID, err := rest.PathUUID(r, "paymentId")
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	var accountID uuid.UUID
	if err := rest.QueryParam(r, "accountId", true, &accountID); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	infos, err := h.paymentInfo.GetPaymentInfo(r.Context(), accountID, paymentID, cc)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, infos)
}
