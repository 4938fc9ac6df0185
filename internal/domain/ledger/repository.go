package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the slice of pgxpool.Pool the repository needs. pgxmock's pool
// satisfies it, which keeps repository tests hermetic.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository persists ledger state in PostgreSQL.
type Repository struct {
	db Querier
}

// NewRepository creates a ledger repository on top of a pgx pool.
func NewRepository(db Querier) *Repository {
	return &Repository{db: db}
}

// InsertEntry records one journal entry and returns its ID.
func (r *Repository) InsertEntry(ctx context.Context, e JournalEntry) (uuid.UUID, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	query := `
		INSERT INTO journal_entries (id, tenant_id, user_id, kind, ledger, amount_minor, memo)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query, e.ID, e.TenantID, e.UserID, string(e.Kind), string(e.Ledger), e.AmountMinor, e.Memo)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert journal entry: %w", err)
	}
	return e.ID, nil
}

// CreateInvoice opens a draft invoice and returns its ID.
func (r *Repository) CreateInvoice(ctx context.Context, tenantID, userID uuid.UUID, memo string) (uuid.UUID, error) {
	id := uuid.New()
	query := `
		INSERT INTO invoices (id, tenant_id, user_id, status, memo)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.Exec(ctx, query, id, tenantID, userID, InvoiceStatusDraft, memo); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return id, nil
}

// CreateCustomer registers a customer and returns its ID.
func (r *Repository) CreateCustomer(ctx context.Context, tenantID uuid.UUID, name string) (uuid.UUID, error) {
	id := uuid.New()
	query := `INSERT INTO customers (id, tenant_id, name) VALUES ($1, $2, $3)`

	if _, err := r.db.Exec(ctx, query, id, tenantID, name); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return id, nil
}

// CreateProduct registers a product or service and returns its ID.
func (r *Repository) CreateProduct(ctx context.Context, tenantID uuid.UUID, name string) (uuid.UUID, error) {
	id := uuid.New()
	query := `INSERT INTO products (id, tenant_id, name) VALUES ($1, $2, $3)`

	if _, err := r.db.Exec(ctx, query, id, tenantID, name); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create product: %w", err)
	}
	return id, nil
}

// SeedChartOfAccounts creates the default chart for a tenant. Existing
// codes are left untouched so re-running is harmless.
func (r *Repository) SeedChartOfAccounts(ctx context.Context, tenantID uuid.UUID) (int, error) {
	query := `
		INSERT INTO accounts (id, tenant_id, code, name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (tenant_id, code) DO NOTHING`

	created := 0
	for _, acc := range defaultAccounts {
		tag, err := r.db.Exec(ctx, query, uuid.New(), tenantID, acc.Code, acc.Name)
		if err != nil {
			return created, fmt.Errorf("failed to seed account %s: %w", acc.Code, err)
		}
		created += int(tag.RowsAffected())
	}
	return created, nil
}

// ClearChartOfAccounts removes every account of the tenant and returns how
// many rows were deleted.
func (r *Repository) ClearChartOfAccounts(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE tenant_id = $1`, tenantID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear chart of accounts: %w", err)
	}
	return tag.RowsAffected(), nil
}

// SumEntries totals journal entries of one kind, in minor units.
func (r *Repository) SumEntries(ctx context.Context, tenantID uuid.UUID, kind EntryKind) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount_minor), 0)
		FROM journal_entries
		WHERE tenant_id = $1 AND kind = $2`

	var total int64
	if err := r.db.QueryRow(ctx, query, tenantID, string(kind)).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum %s entries: %w", kind, err)
	}
	return total, nil
}

// RecentEntries returns the newest entries of one kind, newest first.
func (r *Repository) RecentEntries(ctx context.Context, tenantID uuid.UUID, kind EntryKind, limit int) ([]JournalEntry, error) {
	query := `
		SELECT id, tenant_id, user_id, kind, ledger, amount_minor, memo, created_at
		FROM journal_entries
		WHERE tenant_id = $1 AND kind = $2
		ORDER BY created_at DESC
		LIMIT $3`

	rows, err := r.db.Query(ctx, query, tenantID, string(kind), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent %s entries: %w", kind, err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		var kindStr, ledgerStr string
		if err := rows.Scan(&e.ID, &e.TenantID, &e.UserID, &kindStr, &ledgerStr, &e.AmountMinor, &e.Memo, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		e.Kind = EntryKind(kindStr)
		e.Ledger = LedgerName(ledgerStr)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading journal entries: %w", err)
	}
	return entries, nil
}

// CountPendingInvoices counts invoices still in draft.
func (r *Repository) CountPendingInvoices(ctx context.Context, tenantID uuid.UUID) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM invoices WHERE tenant_id = $1 AND status = 'draft'`, tenantID)
}

// CountCustomers counts the tenant's customers.
func (r *Repository) CountCustomers(ctx context.Context, tenantID uuid.UUID) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM customers WHERE tenant_id = $1`, tenantID)
}

// CountProducts counts the tenant's products and services.
func (r *Repository) CountProducts(ctx context.Context, tenantID uuid.UUID) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products WHERE tenant_id = $1`, tenantID)
}

func (r *Repository) count(ctx context.Context, query string, tenantID uuid.UUID) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, query, tenantID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return n, nil
}
