package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrTokenInUse = errors.New("gateway token already used by another active payment method")

const paymentMethodColumns = `
	record_id, kb_account_id, kb_payment_method_id, gateway_token, is_default, is_active,
	additional_data, created_at, updated_at, kb_tenant_id`

type PaymentMethodRepository struct {
	q persistence.Executor
}

func NewPaymentMethodRepository(db *persistence.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{q: db.Pool}
}

// AddPaymentMethod inserts the method, or re-activates and overwrites an existing row
// with the same billing payment method id.
func (r *PaymentMethodRepository) AddPaymentMethod(ctx context.Context, pm *domain.PaymentMethod) error {
	query := `
		INSERT INTO gateway_payment_methods (
			kb_account_id, kb_payment_method_id, gateway_token, is_default, is_active,
			additional_data, created_at, updated_at, kb_tenant_id
		) VALUES ($1, $2, $3, $4, TRUE, $5, $6, $6, $7)
		ON CONFLICT (kb_payment_method_id, kb_tenant_id) DO UPDATE
		SET gateway_token = EXCLUDED.gateway_token,
		    is_default = EXCLUDED.is_default,
		    is_active = TRUE,
		    additional_data = EXCLUDED.additional_data,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := r.q.Exec(ctx, query,
		pm.AccountID,
		pm.PaymentMethodID,
		pm.GatewayToken,
		pm.IsDefault,
		nonNilMap(pm.AdditionalData),
		pm.CreatedAt,
		pm.TenantID,
	)
	if err != nil {
		if persistence.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrTokenInUse, pm.GatewayToken)
		}
		return fmt.Errorf("failed to add payment method: %w", err)
	}
	return nil
}

// GetPaymentMethod only sees active rows
func (r *PaymentMethodRepository) GetPaymentMethod(ctx context.Context, paymentMethodID, tenantID uuid.UUID) (*domain.PaymentMethod, error) {
	query := `SELECT` + paymentMethodColumns + `
		FROM gateway_payment_methods
		WHERE kb_payment_method_id = $1 AND kb_tenant_id = $2 AND is_active
	`

	pm, err := scanPaymentMethod(r.q.QueryRow(ctx, query, paymentMethodID, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentMethodNotFound
		}
		return nil, fmt.Errorf("query payment method: %w", err)
	}
	return pm, nil
}

// ListPaymentMethods returns the active methods of an account in creation order
func (r *PaymentMethodRepository) ListPaymentMethods(ctx context.Context, accountID, tenantID uuid.UUID) ([]*domain.PaymentMethod, error) {
	query := `SELECT` + paymentMethodColumns + `
		FROM gateway_payment_methods
		WHERE kb_account_id = $1 AND kb_tenant_id = $2 AND is_active
		ORDER BY record_id ASC
	`

	rows, err := r.q.Query(ctx, query, accountID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query payment methods by account: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.PaymentMethod, error) {
		return scanPaymentMethod(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan payment methods: %w", err)
	}
	return results, nil
}

// UpdatePaymentMethod overwrites the token, default flag and attribute bag of an active row
func (r *PaymentMethodRepository) UpdatePaymentMethod(ctx context.Context, pm *domain.PaymentMethod) error {
	query := `
		UPDATE gateway_payment_methods
		SET gateway_token = $1, is_default = $2, additional_data = $3, updated_at = $4
		WHERE kb_payment_method_id = $5 AND kb_tenant_id = $6 AND is_active
	`

	tag, err := r.q.Exec(ctx, query,
		pm.GatewayToken,
		pm.IsDefault,
		nonNilMap(pm.AdditionalData),
		pm.UpdatedAt,
		pm.PaymentMethodID,
		pm.TenantID,
	)
	if err != nil {
		if persistence.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrTokenInUse, pm.GatewayToken)
		}
		return fmt.Errorf("failed to update payment method: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPaymentMethodNotFound
	}
	return nil
}

func (r *PaymentMethodRepository) DeactivatePaymentMethod(ctx context.Context, paymentMethodID, tenantID uuid.UUID, at time.Time) error {
	query := `
		UPDATE gateway_payment_methods
		SET is_active = FALSE, updated_at = $1
		WHERE kb_payment_method_id = $2 AND kb_tenant_id = $3 AND is_active
	`

	tag, err := r.q.Exec(ctx, query, at, paymentMethodID, tenantID)
	if err != nil {
		return fmt.Errorf("failed to deactivate payment method: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPaymentMethodNotFound
	}
	return nil
}

func scanPaymentMethod(row pgx.Row) (*domain.PaymentMethod, error) {
	var m PaymentMethodModel
	err := row.Scan(
		&m.RecordID, &m.AccountID, &m.PaymentMethodID, &m.GatewayToken, &m.IsDefault, &m.IsActive,
		&m.AdditionalData, &m.CreatedAt, &m.UpdatedAt, &m.TenantID,
	)
	if err != nil {
		return nil, err
	}
	return toDomainPaymentMethod(m), nil
}
