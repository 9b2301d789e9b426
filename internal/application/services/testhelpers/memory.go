package testhelpers

import (
	"cmp"
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/application"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/google/uuid"
)

var ErrDuplicateTransaction = errors.New("transaction already recorded")

// MemoryResponseStore is an in-memory ResponseStore. Set a ...Fn field to override a method.
type MemoryResponseStore struct {
	mu     sync.Mutex
	rows   []*domain.TransactionResponse
	nextID int64

	AddResponseFn           func(ctx context.Context, response *domain.TransactionResponse) (*domain.TransactionResponse, error)
	MergeResponseMetadataFn func(ctx context.Context, transactionID, tenantID uuid.UUID, metadata map[string]any) (*domain.TransactionResponse, error)
}

func NewMemoryResponseStore() *MemoryResponseStore {
	return &MemoryResponseStore{}
}

func (s *MemoryResponseStore) AddResponse(ctx context.Context, response *domain.TransactionResponse) (*domain.TransactionResponse, error) {
	if s.AddResponseFn != nil {
		return s.AddResponseFn(ctx, response)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rows {
		if r.TransactionID == response.TransactionID && r.TenantID == response.TenantID {
			return nil, ErrDuplicateTransaction
		}
	}

	s.nextID++
	stored := cloneResponse(response)
	stored.RecordID = s.nextID
	s.rows = append(s.rows, stored)
	return cloneResponse(stored), nil
}

func (s *MemoryResponseStore) GetResponses(_ context.Context, paymentID, tenantID uuid.UUID) ([]*domain.TransactionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.TransactionResponse
	for _, r := range s.rows {
		if r.PaymentID == paymentID && r.TenantID == tenantID {
			out = append(out, cloneResponse(r))
		}
	}
	return out, nil
}

func (s *MemoryResponseStore) GetSuccessfulAuthorization(_ context.Context, paymentID, tenantID uuid.UUID) (*domain.TransactionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.rows) - 1; i >= 0; i-- {
		r := s.rows[i]
		if r.PaymentID != paymentID || r.TenantID != tenantID || !r.Success {
			continue
		}
		if r.TransactionType == domain.TransactionTypeAuthorize || r.TransactionType == domain.TransactionTypePurchase {
			return cloneResponse(r), nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

func (s *MemoryResponseStore) MergeResponseMetadata(ctx context.Context, transactionID, tenantID uuid.UUID, metadata map[string]any) (*domain.TransactionResponse, error) {
	if s.MergeResponseMetadataFn != nil {
		return s.MergeResponseMetadataFn(ctx, transactionID, tenantID, metadata)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rows {
		if r.TransactionID == transactionID && r.TenantID == tenantID {
			maps.Copy(r.AdditionalData, metadata)
			return cloneResponse(r), nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

// Rows returns a copy of everything stored, in insertion order
func (s *MemoryResponseStore) Rows() []*domain.TransactionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.TransactionResponse, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, cloneResponse(r))
	}
	return out
}

// Seed stores rows as they are, bypassing AddResponseFn
func (s *MemoryResponseStore) Seed(rows ...*domain.TransactionResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range rows {
		s.nextID++
		stored := cloneResponse(r)
		stored.RecordID = s.nextID
		s.rows = append(s.rows, stored)
	}
}

func cloneResponse(r *domain.TransactionResponse) *domain.TransactionResponse {
	c := *r
	c.GatewayResponse = maps.Clone(r.GatewayResponse)
	c.AdditionalData = maps.Clone(r.AdditionalData)
	if c.AdditionalData == nil {
		c.AdditionalData = map[string]any{}
	}
	return &c
}

// MemoryPaymentMethodStore is an in-memory PaymentMethodStore keyed by tenant and
// billing payment method id
type MemoryPaymentMethodStore struct {
	mu      sync.Mutex
	methods map[uuid.UUID]map[uuid.UUID]*domain.PaymentMethod
	nextID  int64

	AddPaymentMethodFn    func(ctx context.Context, pm *domain.PaymentMethod) error
	UpdatePaymentMethodFn func(ctx context.Context, pm *domain.PaymentMethod) error
}

func NewMemoryPaymentMethodStore() *MemoryPaymentMethodStore {
	return &MemoryPaymentMethodStore{methods: make(map[uuid.UUID]map[uuid.UUID]*domain.PaymentMethod)}
}

func (s *MemoryPaymentMethodStore) GetPaymentMethod(_ context.Context, paymentMethodID, tenantID uuid.UUID) (*domain.PaymentMethod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pm, ok := s.methods[tenantID][paymentMethodID]
	if !ok || !pm.IsActive {
		return nil, domain.ErrPaymentMethodNotFound
	}
	return clonePaymentMethod(pm), nil
}

func (s *MemoryPaymentMethodStore) ListPaymentMethods(_ context.Context, accountID, tenantID uuid.UUID) ([]*domain.PaymentMethod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.PaymentMethod
	for _, pm := range s.methods[tenantID] {
		if pm.AccountID == accountID && pm.IsActive {
			out = append(out, clonePaymentMethod(pm))
		}
	}
	sortByRecordID(out)
	return out, nil
}

func (s *MemoryPaymentMethodStore) AddPaymentMethod(ctx context.Context, pm *domain.PaymentMethod) error {
	if s.AddPaymentMethodFn != nil {
		return s.AddPaymentMethodFn(ctx, pm)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tenant, ok := s.methods[pm.TenantID]
	if !ok {
		tenant = make(map[uuid.UUID]*domain.PaymentMethod)
		s.methods[pm.TenantID] = tenant
	}

	stored := clonePaymentMethod(pm)
	stored.IsActive = true
	if existing, ok := tenant[pm.PaymentMethodID]; ok {
		stored.RecordID = existing.RecordID
		stored.CreatedAt = existing.CreatedAt
	} else {
		s.nextID++
		stored.RecordID = s.nextID
	}
	tenant[pm.PaymentMethodID] = stored
	return nil
}

func (s *MemoryPaymentMethodStore) UpdatePaymentMethod(ctx context.Context, pm *domain.PaymentMethod) error {
	if s.UpdatePaymentMethodFn != nil {
		return s.UpdatePaymentMethodFn(ctx, pm)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.methods[pm.TenantID][pm.PaymentMethodID]
	if !ok || !existing.IsActive {
		return domain.ErrPaymentMethodNotFound
	}
	existing.GatewayToken = pm.GatewayToken
	existing.IsDefault = pm.IsDefault
	existing.AdditionalData = maps.Clone(pm.AdditionalData)
	existing.UpdatedAt = pm.UpdatedAt
	return nil
}

func (s *MemoryPaymentMethodStore) DeactivatePaymentMethod(_ context.Context, paymentMethodID, tenantID uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.methods[tenantID][paymentMethodID]
	if !ok || !existing.IsActive {
		return domain.ErrPaymentMethodNotFound
	}
	existing.IsActive = false
	existing.UpdatedAt = at
	return nil
}

// Find returns the row whatever its active flag, or nil
func (s *MemoryPaymentMethodStore) Find(tenantID, paymentMethodID uuid.UUID) *domain.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()

	pm, ok := s.methods[tenantID][paymentMethodID]
	if !ok {
		return nil
	}
	return clonePaymentMethod(pm)
}

func clonePaymentMethod(pm *domain.PaymentMethod) *domain.PaymentMethod {
	c := *pm
	c.AdditionalData = maps.Clone(pm.AdditionalData)
	return &c
}

func sortByRecordID(methods []*domain.PaymentMethod) {
	slices.SortFunc(methods, func(a, b *domain.PaymentMethod) int {
		return cmp.Compare(a.RecordID, b.RecordID)
	})
}

// MemoryAccountDirectory keeps custom fields per account. Accounts are known unless
// GetAccountFn says otherwise.
type MemoryAccountDirectory struct {
	mu     sync.Mutex
	fields map[uuid.UUID]map[string]string

	GetAccountFn     func(ctx context.Context, accountID uuid.UUID, cc domain.CallContext) (*domain.Account, error)
	GetCustomFieldFn func(ctx context.Context, accountID uuid.UUID, name string, cc domain.CallContext) (string, error)
}

func NewMemoryAccountDirectory() *MemoryAccountDirectory {
	return &MemoryAccountDirectory{fields: make(map[uuid.UUID]map[string]string)}
}

func (d *MemoryAccountDirectory) GetAccount(ctx context.Context, accountID uuid.UUID, cc domain.CallContext) (*domain.Account, error) {
	if d.GetAccountFn != nil {
		return d.GetAccountFn(ctx, accountID, cc)
	}
	return &domain.Account{ID: accountID, Currency: "USD"}, nil
}

func (d *MemoryAccountDirectory) GetCustomField(ctx context.Context, accountID uuid.UUID, name string, cc domain.CallContext) (string, error) {
	if d.GetCustomFieldFn != nil {
		return d.GetCustomFieldFn(ctx, accountID, name, cc)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fields[accountID][name], nil
}

func (d *MemoryAccountDirectory) AddCustomField(_ context.Context, accountID uuid.UUID, name, value string, _ domain.CallContext) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fields[accountID] == nil {
		d.fields[accountID] = make(map[string]string)
	}
	d.fields[accountID][name] = value
	return nil
}

// MapCustomer stores the gateway customer id on the account
func (d *MemoryAccountDirectory) MapCustomer(accountID uuid.UUID, customerID string) {
	_ = d.AddCustomField(context.Background(), accountID, domain.CustomerIDCustomField, customerID, domain.CallContext{})
}

// MemoryRegistry hands out a fresh billing payment method id per registration
type MemoryRegistry struct {
	mu         sync.Mutex
	Registered map[string]uuid.UUID

	RegisterPaymentMethodFn func(ctx context.Context, accountID uuid.UUID, externalKey string, isDefault bool, properties []domain.PluginProperty, cc domain.CallContext) (uuid.UUID, error)
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{Registered: make(map[string]uuid.UUID)}
}

func (r *MemoryRegistry) RegisterPaymentMethod(ctx context.Context, accountID uuid.UUID, externalKey string, isDefault bool, properties []domain.PluginProperty, cc domain.CallContext) (uuid.UUID, error) {
	if r.RegisterPaymentMethodFn != nil {
		return r.RegisterPaymentMethodFn(ctx, accountID, externalKey, isDefault, properties, cc)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	r.Registered[externalKey] = id
	return id, nil
}

// StaticGatewayFactory returns the same client for every tenant
type StaticGatewayFactory struct {
	Client application.GatewayClient
	Err    error
	Calls  int
}

func (f *StaticGatewayFactory) ForTenant(_ context.Context, _ uuid.UUID) (application.GatewayClient, error) {
	f.Calls++
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Client, nil
}
