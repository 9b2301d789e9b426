package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/google/uuid"
)

type customField struct {
	ObjectID   string `json:"objectId,omitempty"`
	ObjectType string `json:"objectType,omitempty"`
	Name       string `json:"name"`
	Value      string `json:"value"`
}

type registeredMethod struct {
	AccountID   string `json:"accountId"`
	ExternalKey string `json:"externalKey"`
	PluginName  string `json:"pluginName"`
}

// FakeBilling serves the slice of the billing platform API the plugin reads and writes
type FakeBilling struct {
	*httptest.Server

	mu         sync.Mutex
	accounts   map[uuid.UUID]domain.Account
	fields     map[uuid.UUID][]customField
	registered map[string]registeredMethod
}

func NewFakeBilling() *FakeBilling {
	b := &FakeBilling{
		accounts:   make(map[uuid.UUID]domain.Account),
		fields:     make(map[uuid.UUID][]customField),
		registered: make(map[string]registeredMethod),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /1.0/kb/accounts/{id}", b.getAccount)
	mux.HandleFunc("GET /1.0/kb/accounts/{id}/customFields", b.getCustomFields)
	mux.HandleFunc("POST /1.0/kb/accounts/{id}/customFields", b.addCustomFields)
	mux.HandleFunc("POST /1.0/kb/accounts/{id}/paymentMethods", b.registerPaymentMethod)

	b.Server = httptest.NewServer(mux)
	return b
}

// AddAccount creates an account, mapped to a gateway customer when customerID is set
func (b *FakeBilling) AddAccount(customerID string) uuid.UUID {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.New()
	b.accounts[id] = domain.Account{ID: id, ExternalKey: "ext-" + id.String()[:8], Currency: "USD"}
	if customerID != "" {
		b.fields[id] = append(b.fields[id], customField{Name: domain.CustomerIDCustomField, Value: customerID})
	}
	return id
}

func (b *FakeBilling) CustomField(accountID uuid.UUID, name string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, f := range b.fields[accountID] {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// RegisteredKeys returns the external keys of payment methods registered by the plugin
func (b *FakeBilling) RegisteredKeys() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	keys := make([]string, 0, len(b.registered))
	for _, m := range b.registered {
		keys = append(keys, m.ExternalKey)
	}
	return keys
}

func (b *FakeBilling) account(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeBillingError(w, http.StatusBadRequest, "invalid account id")
		return uuid.Nil, false
	}
	if _, ok := b.accounts[id]; !ok {
		writeBillingError(w, http.StatusNotFound, "account not found")
		return uuid.Nil, false
	}
	return id, true
}

func (b *FakeBilling) getAccount(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id, ok := b.account(w, r)
	if !ok {
		return
	}
	writeBody(w, http.StatusOK, b.accounts[id])
}

func (b *FakeBilling) getCustomFields(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id, ok := b.account(w, r)
	if !ok {
		return
	}
	fields := b.fields[id]
	if fields == nil {
		fields = []customField{}
	}
	writeBody(w, http.StatusOK, fields)
}

func (b *FakeBilling) addCustomFields(w http.ResponseWriter, r *http.Request) {
	var fields []customField
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeBillingError(w, http.StatusBadRequest, err.Error())
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	id, ok := b.account(w, r)
	if !ok {
		return
	}
	b.fields[id] = append(b.fields[id], fields...)
	writeBody(w, http.StatusCreated, fields)
}

func (b *FakeBilling) registerPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req registeredMethod
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBillingError(w, http.StatusBadRequest, err.Error())
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.account(w, r); !ok {
		return
	}
	id := uuid.NewString()
	b.registered[id] = req
	writeBody(w, http.StatusCreated, map[string]string{"paymentMethodId": id})
}

func writeBillingError(w http.ResponseWriter, status int, message string) {
	writeBody(w, status, map[string]string{"code": http.StatusText(status), "message": message})
}
