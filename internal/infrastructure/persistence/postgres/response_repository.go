package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrDuplicateTransaction = errors.New("gateway response already recorded for transaction")

const responseColumns = `
	record_id, kb_account_id, kb_payment_id, kb_payment_transaction_id, transaction_type,
	amount, currency, gateway_transaction_id, success, gateway_response, additional_data,
	created_at, kb_tenant_id`

type ResponseRepository struct {
	q persistence.Executor
}

func NewResponseRepository(db *persistence.DB) *ResponseRepository {
	return &ResponseRepository{q: db.Pool}
}

// AddResponse inserts the row for a billing transaction. A second insert for the same
// transaction id fails with ErrDuplicateTransaction.
func (r *ResponseRepository) AddResponse(ctx context.Context, response *domain.TransactionResponse) (*domain.TransactionResponse, error) {
	query := `
		INSERT INTO gateway_responses (
			kb_account_id, kb_payment_id, kb_payment_transaction_id, transaction_type,
			amount, currency, gateway_transaction_id, success, gateway_response, additional_data,
			created_at, kb_tenant_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING` + responseColumns

	m := toResponseModel(response)
	row := r.q.QueryRow(ctx, query,
		m.AccountID,
		m.PaymentID,
		m.TransactionID,
		m.TransactionType,
		m.Amount,
		m.Currency,
		m.GatewayTransactionID,
		m.Success,
		m.GatewayResponse,
		m.AdditionalData,
		m.CreatedAt,
		m.TenantID,
	)

	saved, err := scanResponse(row)
	if err != nil {
		if persistence.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTransaction, response.TransactionID)
		}
		return nil, fmt.Errorf("failed to insert gateway response: %w", err)
	}
	return saved, nil
}

// GetResponses returns every row of a payment in creation order
func (r *ResponseRepository) GetResponses(ctx context.Context, paymentID, tenantID uuid.UUID) ([]*domain.TransactionResponse, error) {
	query := `SELECT` + responseColumns + `
		FROM gateway_responses
		WHERE kb_payment_id = $1 AND kb_tenant_id = $2
		ORDER BY record_id ASC
	`

	rows, err := r.q.Query(ctx, query, paymentID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query gateway responses by payment: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.TransactionResponse, error) {
		return scanResponse(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan gateway responses: %w", err)
	}
	return results, nil
}

// GetSuccessfulAuthorization finds the latest successful AUTHORIZE or PURCHASE of a payment
func (r *ResponseRepository) GetSuccessfulAuthorization(ctx context.Context, paymentID, tenantID uuid.UUID) (*domain.TransactionResponse, error) {
	query := `SELECT` + responseColumns + `
		FROM gateway_responses
		WHERE kb_payment_id = $1
		  AND kb_tenant_id = $2
		  AND success
		  AND transaction_type IN ('AUTHORIZE', 'PURCHASE')
		ORDER BY record_id DESC
		LIMIT 1
	`

	resp, err := scanResponse(r.q.QueryRow(ctx, query, paymentID, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("query successful authorization: %w", err)
	}
	return resp, nil
}

// MergeResponseMetadata overlays metadata onto the row's additional data. Gateway outcome
// columns are never touched.
func (r *ResponseRepository) MergeResponseMetadata(ctx context.Context, transactionID, tenantID uuid.UUID, metadata map[string]any) (*domain.TransactionResponse, error) {
	query := `
		UPDATE gateway_responses
		SET additional_data = additional_data || $1::jsonb
		WHERE kb_payment_transaction_id = $2 AND kb_tenant_id = $3
		RETURNING` + responseColumns

	resp, err := scanResponse(r.q.QueryRow(ctx, query, nonNilMap(metadata), transactionID, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("merge gateway response metadata: %w", err)
	}
	return resp, nil
}

func scanResponse(row pgx.Row) (*domain.TransactionResponse, error) {
	var m ResponseModel
	err := row.Scan(
		&m.RecordID, &m.AccountID, &m.PaymentID, &m.TransactionID, &m.TransactionType,
		&m.Amount, &m.Currency, &m.GatewayTransactionID, &m.Success, &m.GatewayResponse, &m.AdditionalData,
		&m.CreatedAt, &m.TenantID,
	)
	if err != nil {
		return nil, err
	}
	return toDomainResponse(m), nil
}
