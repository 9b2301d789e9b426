package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/application"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/interfaces/rest"
)

func (h *Handlers) BuildFormDescriptor(w http.ResponseWriter, r *http.Request) {
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

	// the body is optional here
	var req PropertiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	rest.WriteError(w, h.unsupported.BuildFormDescriptor(r.Context(), accountID, req.Properties, cc), h.logger)
}

func (h *Handlers) ProcessNotification(w http.ResponseWriter, r *http.Request) {
	cc, err := rest.CallContext(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	var req NotificationRequest
	if err := rest.DecodeJSON(r, h.validate, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteError(w, h.unsupported.ProcessNotification(r.Context(), req.Notification, req.Properties, cc), h.logger)
}
