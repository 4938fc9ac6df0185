package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_InsertEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	tenantID, userID := uuid.New(), uuid.New()
	mock.ExpectExec(`INSERT INTO journal_entries`).
		WithArgs(pgxmock.AnyArg(), tenantID, userID, "expense", "expenses", int64(20000), "Pagué $200 de seguro").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewRepository(mock)
	id, err := repo.InsertEntry(context.Background(), JournalEntry{
		TenantID:    tenantID,
		UserID:      userID,
		Kind:        EntryExpense,
		Ledger:      LedgerExpenses,
		AmountMinor: 20000,
		Memo:        "Pagué $200 de seguro",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SumEntries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	tenantID := uuid.New()
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount_minor\), 0\)`).
		WithArgs(tenantID, "income").
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(int64(157414)))

	repo := NewRepository(mock)
	total, err := repo.SumEntries(context.Background(), tenantID, EntryIncome)
	require.NoError(t, err)
	assert.Equal(t, int64(157414), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RecentEntries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	tenantID, userID := uuid.New(), uuid.New()
	now := time.Now()
	mock.ExpectQuery(`SELECT id, tenant_id, user_id, kind, ledger, amount_minor, memo, created_at`).
		WithArgs(tenantID, "expense", 5).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "tenant_id", "user_id", "kind", "ledger", "amount_minor", "memo", "created_at",
		}).AddRow(
			uuid.New(), tenantID, userID, "expense", "expenses", int64(30000), "Agrega 300 de gasolina", now,
		).AddRow(
			uuid.New(), tenantID, userID, "expense", "transactions", int64(15000), "registra un pago de 150 en transacciones", now.Add(-time.Hour),
		))

	repo := NewRepository(mock)
	entries, err := repo.RecentEntries(context.Background(), tenantID, EntryExpense, 5)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, LedgerExpenses, entries[0].Ledger)
	assert.Equal(t, LedgerTransactions, entries[1].Ledger)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ClearChartOfAccounts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	tenantID := uuid.New()
	mock.ExpectExec(`DELETE FROM accounts`).
		WithArgs(tenantID).
		WillReturnResult(pgxmock.NewResult("DELETE", 9))

	repo := NewRepository(mock)
	deleted, err := repo.ClearChartOfAccounts(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Equal(t, int64(9), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SeedChartOfAccounts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	tenantID := uuid.New()
	for range defaultAccounts {
		mock.ExpectExec(`INSERT INTO accounts`).
			WithArgs(pgxmock.AnyArg(), tenantID, pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}

	repo := NewRepository(mock)
	created, err := repo.SeedChartOfAccounts(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Equal(t, len(defaultAccounts), created)
	assert.NoError(t, mock.ExpectationsWereMet())
}
