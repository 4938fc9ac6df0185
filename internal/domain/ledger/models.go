// Package ledger implements the handler collaborators behind the action
// dispatcher: journal writes, catalog maintenance, report answers and the
// financial snapshot consumed by the conversational fallback.
package ledger

import (
	"time"

	"github.com/google/uuid"
)

// EntryKind distinguishes money coming in from money going out.
type EntryKind string

const (
	EntryIncome  EntryKind = "income"
	EntryExpense EntryKind = "expense"
)

// LedgerName is the book an entry lands in. Payments default to the
// expenses book; an explicit "en transacciones" request lands in the
// transactions book instead.
type LedgerName string

const (
	LedgerTransactions LedgerName = "transactions"
	LedgerExpenses     LedgerName = "expenses"
)

// JournalEntry is one recorded movement. Amounts are MXN minor units.
type JournalEntry struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	UserID      uuid.UUID
	Kind        EntryKind
	Ledger      LedgerName
	AmountMinor int64
	Memo        string
	CreatedAt   time.Time
}

// Invoice is a draft invoice opened from chat; details are filled in later
// through the regular CRUD screens.
type Invoice struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	UserID    uuid.UUID
	Status    string
	Memo      string
	CreatedAt time.Time
}

// InvoiceStatusDraft is the only status chat-created invoices start in.
const InvoiceStatusDraft = "draft"

// Account is one row of a tenant's chart of accounts.
type Account struct {
	ID       uuid.UUID
	TenantID uuid.UUID
	Code     string
	Name     string
}

// defaultAccounts seeds a freshly created chart of accounts.
var defaultAccounts = []Account{
	{Code: "100", Name: "Caja y bancos"},
	{Code: "110", Name: "Clientes"},
	{Code: "200", Name: "Proveedores"},
	{Code: "400", Name: "Ingresos por fletes"},
	{Code: "500", Name: "Combustible"},
	{Code: "510", Name: "Mantenimiento"},
	{Code: "520", Name: "Casetas y peajes"},
	{Code: "530", Name: "Seguros"},
	{Code: "590", Name: "Otros gastos"},
}
