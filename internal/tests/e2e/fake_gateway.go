package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/tests/e2e/testdata"
	"github.com/shopspring/decimal"
)

var (
	declineFloor   = decimal.NewFromInt(2000)
	declineCeiling = decimal.NewFromInt(3000)
)

// FakeGateway is an in-memory gateway speaking the REST dialect of the gateway client
type FakeGateway struct {
	*httptest.Server

	mu           sync.Mutex
	seq          int
	transactions map[string]*domain.GatewayTransaction
	orders       map[string]string
	methods      map[string]*domain.GatewayPaymentMethod
	nonces       map[string]string
	calls        map[string]int
}

func NewFakeGateway() *FakeGateway {
	g := &FakeGateway{
		transactions: make(map[string]*domain.GatewayTransaction),
		orders:       make(map[string]string),
		methods:      make(map[string]*domain.GatewayPaymentMethod),
		nonces:       make(map[string]string),
		calls:        make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/payment_method_nonces", g.createNonce)
	mux.HandleFunc("POST /v1/transactions", g.createTransaction)
	mux.HandleFunc("GET /v1/transactions/{id}", g.getTransaction)
	mux.HandleFunc("POST /v1/transactions/{id}/submit_for_settlement", g.submitForSettlement)
	mux.HandleFunc("PUT /v1/transactions/{id}/void", g.void)
	mux.HandleFunc("POST /v1/transactions/{id}/refund", g.refund)
	mux.HandleFunc("POST /v1/payment_methods", g.createPaymentMethod)
	mux.HandleFunc("GET /v1/payment_methods/{token}", g.getPaymentMethod)
	mux.HandleFunc("DELETE /v1/payment_methods/{token}", g.deletePaymentMethod)
	mux.HandleFunc("GET /v1/customers/{id}/payment_methods", g.listPaymentMethods)

	g.Server = httptest.NewServer(mux)
	return g
}

// Vault stores a card for a customer directly at the gateway
func (g *FakeGateway) Vault(customerID string, card testdata.TestCard) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.methods[card.Token] = g.newMethod(customerID, card.Token, card)
}

// Settle moves a transaction to SETTLED, as the gateway's batch would
func (g *FakeGateway) Settle(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if t, ok := g.transactions[id]; ok {
		t.Status = domain.GatewayStatusSettled
		t.UpdatedAt = time.Now().UTC()
	}
}

func (g *FakeGateway) HasPaymentMethod(token string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.methods[token]
	return ok
}

// Calls returns how many requests an endpoint received, keyed as "METHOD /pattern"
func (g *FakeGateway) Calls(endpoint string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[endpoint]
}

func (g *FakeGateway) count(r *http.Request) {
	g.calls[r.Pattern]++
}

func (g *FakeGateway) nextID(prefix string) string {
	g.seq++
	return fmt.Sprintf("%s%06d", prefix, g.seq)
}

func (g *FakeGateway) newMethod(customerID, token string, card testdata.TestCard) *domain.GatewayPaymentMethod {
	now := time.Now().UTC()
	return &domain.GatewayPaymentMethod{
		Token:      token,
		CustomerID: customerID,
		Type:       domain.PaymentMethodTypeCard,
		Details: map[string]any{
			"last4":             card.Last4,
			"card_type":         card.CardType,
			"customer_location": card.Country,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (g *FakeGateway) createNonce(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PaymentMethodToken string `json:"payment_method_token"`
	}
	if !decode(w, r, &req) {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.count(r)

	if _, ok := g.methods[req.PaymentMethodToken]; !ok {
		writeGatewayError(w, http.StatusNotFound, "not_found", "payment method not found")
		return
	}
	nonce := g.nextID("nonce-")
	g.nonces[nonce] = req.PaymentMethodToken
	writeBody(w, http.StatusCreated, map[string]string{"nonce": nonce})
}

func (g *FakeGateway) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type               string          `json:"type"`
		Amount             decimal.Decimal `json:"amount"`
		OrderID            string          `json:"order_id"`
		CustomerID         string          `json:"customer_id"`
		PaymentMethodNonce string          `json:"payment_method_nonce"`
		Options            struct {
			SubmitForSettlement bool `json:"submit_for_settlement"`
		} `json:"options"`
	}
	if !decode(w, r, &req) {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.count(r)

	token, ok := g.nonces[req.PaymentMethodNonce]
	if !ok {
		writeResult(w, &domain.TransactionResult{Success: false, Message: "Unknown payment_method_nonce."})
		return
	}
	delete(g.nonces, req.PaymentMethodNonce)

	if req.OrderID != "" {
		if _, dup := g.orders[req.OrderID]; dup {
			writeResult(w, &domain.TransactionResult{Success: false, Message: "Duplicate order id."})
			return
		}
	}

	now := time.Now().UTC()
	txn := &domain.GatewayTransaction{
		ID:                 g.nextID("gw-"),
		Type:               req.Type,
		Amount:             req.Amount,
		CurrencyISOCode:    "USD",
		OrderID:            req.OrderID,
		CustomerID:         req.CustomerID,
		PaymentMethodToken: token,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	success := true
	switch {
	case req.Amount.GreaterThanOrEqual(declineFloor) && req.Amount.LessThan(declineCeiling):
		success = false
		txn.Status = domain.GatewayStatusProcessorDeclined
		txn.ProcessorResponseCode = testdata.DeclinedResponseCode
		txn.ProcessorResponseText = testdata.DeclinedResponseText
	case req.Type == "credit", req.Options.SubmitForSettlement:
		txn.Status = domain.GatewayStatusSubmittedForSettlement
		txn.ProcessorResponseCode = "1000"
	default:
		txn.Status = domain.GatewayStatusAuthorized
		txn.ProcessorResponseCode = "1000"
	}

	g.transactions[txn.ID] = txn
	if req.OrderID != "" {
		g.orders[req.OrderID] = txn.ID
	}

	result := &domain.TransactionResult{Success: success, Transaction: cloneTransaction(txn)}
	if !success {
		result.Message = testdata.DeclinedResponseText
	}
	writeResult(w, result)
}

func (g *FakeGateway) getTransaction(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.count(r)

	txn, ok := g.transactions[r.PathValue("id")]
	if !ok {
		writeGatewayError(w, http.StatusNotFound, "not_found", "transaction not found")
		return
	}
	writeResult(w, &domain.TransactionResult{Success: true, Transaction: cloneTransaction(txn)})
}

func (g *FakeGateway) submitForSettlement(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if !decode(w, r, &req) {
		return
	}
	g.transition(w, r, []domain.GatewayStatus{domain.GatewayStatusAuthorized}, domain.GatewayStatusSubmittedForSettlement)
}

func (g *FakeGateway) void(w http.ResponseWriter, r *http.Request) {
	g.transition(w, r, []domain.GatewayStatus{
		domain.GatewayStatusAuthorized,
		domain.GatewayStatusSubmittedForSettlement,
	}, domain.GatewayStatusVoided)
}

func (g *FakeGateway) transition(w http.ResponseWriter, r *http.Request, from []domain.GatewayStatus, to domain.GatewayStatus) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.count(r)

	txn, ok := g.transactions[r.PathValue("id")]
	if !ok {
		writeGatewayError(w, http.StatusNotFound, "not_found", "transaction not found")
		return
	}
	if !slices.Contains(from, txn.Status) {
		writeResult(w, &domain.TransactionResult{
			Success: false,
			Message: fmt.Sprintf("Cannot move a transaction from %s to %s.", txn.Status, to),
		})
		return
	}

	txn.Status = to
	txn.UpdatedAt = time.Now().UTC()
	writeResult(w, &domain.TransactionResult{Success: true, Transaction: cloneTransaction(txn)})
}

func (g *FakeGateway) refund(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if !decode(w, r, &req) {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.count(r)

	original, ok := g.transactions[r.PathValue("id")]
	if !ok {
		writeGatewayError(w, http.StatusNotFound, "not_found", "transaction not found")
		return
	}
	if original.Status != domain.GatewayStatusSettled && original.Status != domain.GatewayStatusSubmittedForSettlement {
		writeResult(w, &domain.TransactionResult{Success: false, Message: "Cannot refund a transaction unless it is settled."})
		return
	}
	if req.Amount.GreaterThan(original.Amount) {
		writeResult(w, &domain.TransactionResult{Success: false, Message: "Refund amount is too large."})
		return
	}

	now := time.Now().UTC()
	txn := &domain.GatewayTransaction{
		ID:                    g.nextID("gw-"),
		Type:                  "credit",
		Status:                domain.GatewayStatusSubmittedForSettlement,
		Amount:                req.Amount,
		CurrencyISOCode:       original.CurrencyISOCode,
		CustomerID:            original.CustomerID,
		PaymentMethodToken:    original.PaymentMethodToken,
		ProcessorResponseCode: "1000",
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	g.transactions[txn.ID] = txn
	writeResult(w, &domain.TransactionResult{Success: true, Transaction: cloneTransaction(txn)})
}

func (g *FakeGateway) createPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerID         string `json:"customer_id"`
		Token              string `json:"token"`
		PaymentMethodNonce string `json:"payment_method_nonce"`
		Type               string `json:"type"`
	}
	if !decode(w, r, &req) {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.count(r)

	if req.CustomerID == "" || req.PaymentMethodNonce == "" {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(domain.PaymentMethodResult{
			Success: false,
			Message: "Customer and nonce are required.",
		})
		return
	}

	token := req.Token
	if token == "" {
		token = g.nextID("tok-")
	}
	pm := g.newMethod(req.CustomerID, token, testdata.VisaCard)
	g.methods[token] = pm

	copied := *pm
	writeBody(w, http.StatusCreated, domain.PaymentMethodResult{Success: true, PaymentMethod: &copied})
}

func (g *FakeGateway) getPaymentMethod(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.count(r)

	pm, ok := g.methods[r.PathValue("token")]
	if !ok {
		writeGatewayError(w, http.StatusNotFound, "not_found", "payment method not found")
		return
	}
	writeBody(w, http.StatusOK, map[string]any{"payment_method": pm})
}

func (g *FakeGateway) deletePaymentMethod(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.count(r)

	token := r.PathValue("token")
	if _, ok := g.methods[token]; !ok {
		writeGatewayError(w, http.StatusNotFound, "not_found", "payment method not found")
		return
	}
	delete(g.methods, token)
	writeBody(w, http.StatusOK, domain.Result{Success: true})
}

func (g *FakeGateway) listPaymentMethods(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.count(r)

	customerID := r.PathValue("id")
	methods := make([]domain.GatewayPaymentMethod, 0)
	for _, pm := range g.methods {
		if pm.CustomerID == customerID {
			methods = append(methods, *pm)
		}
	}
	slices.SortFunc(methods, func(a, b domain.GatewayPaymentMethod) int {
		return strings.Compare(a.Token, b.Token)
	})
	writeBody(w, http.StatusOK, map[string]any{"payment_methods": methods})
}

func cloneTransaction(t *domain.GatewayTransaction) *domain.GatewayTransaction {
	copied := *t
	return &copied
}

// writeResult answers 422 for unsuccessful results, the way the gateway reports declines
func writeResult(w http.ResponseWriter, result *domain.TransactionResult) {
	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}
	writeBody(w, status, result)
}

func writeGatewayError(w http.ResponseWriter, status int, code, message string) {
	writeBody(w, status, map[string]string{"error": code, "message": message})
}

func writeBody(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func decode(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		writeGatewayError(w, http.StatusBadRequest, "bad_request", err.Error())
		return false
	}
	return true
}
