package handlers

import (
	"net/http"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/application/services"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/interfaces/rest"
)

func (h *Handlers) AddPaymentMethod(w http.ResponseWriter, r *http.Request) {
	cc, err := rest.CallContext(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	accountID, err := rest.PathUUID(r, "accountId")
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	queryProperties, err := rest.QueryProperties(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	var req AddPaymentMethodRequest
	if err := rest.DecodeJSON(r, h.validate, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	detail, err := h.paymentMethods.AddPaymentMethod(r.Context(), services.AddPaymentMethodCommand{
		AccountID:               accountID,
		PaymentMethodID:         req.PaymentMethodID,
		ExternalPaymentMethodID: req.ExternalPaymentMethodID,
		SetDefault:              req.IsDefault,
		Properties:              req.Properties,
		QueryProperties:         queryProperties,
	}, cc)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, detail)
}

func (h *Handlers) GetPaymentMethods(w http.ResponseWriter, r *http.Request) {
	cc, err := rest.CallContext(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	accountID, err := rest.PathUUID(r, "accountId")
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	var refresh bool
	if err := rest.QueryParam(r, "refresh", false, &refresh); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	infos, err := h.paymentMethods.GetPaymentMethods(r.Context(), accountID, refresh, cc)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, infos)
}

func (h *Handlers) GetPaymentMethodDetail(w http.ResponseWriter, r *http.Request) {
	cc, err := rest.CallContext(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	accountID, err := rest.PathUUID(r, "accountId")
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	paymentMethodID, err := rest.PathUUID(r, "paymentMethodId")
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	detail, err := h.paymentMethods.GetPaymentMethodDetail(r.Context(), accountID, paymentMethodID, cc)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handlers) DeletePaymentMethod(w http.ResponseWriter, r *http.Request) {
	cc, err := rest.CallContext(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	accountID, err := rest.PathUUID(r, "accountId")
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	paymentMethodID, err := rest.PathUUID(r, "paymentMethodId")
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	if err := h.paymentMethods.DeletePaymentMethod(r.Context(), accountID, paymentMethodID, cc); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
