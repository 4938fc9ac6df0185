package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/FACorreiaa/contabot/internal/domain/dispatch"
	"github.com/FACorreiaa/contabot/internal/domain/interpret"
	"github.com/FACorreiaa/contabot/pkg/money"
)

// Store is the persistence surface the handlers need; *Repository
// implements it.
type Store interface {
	InsertEntry(ctx context.Context, e JournalEntry) (uuid.UUID, error)
	CreateInvoice(ctx context.Context, tenantID, userID uuid.UUID, memo string) (uuid.UUID, error)
	CreateCustomer(ctx context.Context, tenantID uuid.UUID, name string) (uuid.UUID, error)
	CreateProduct(ctx context.Context, tenantID uuid.UUID, name string) (uuid.UUID, error)
	SeedChartOfAccounts(ctx context.Context, tenantID uuid.UUID) (int, error)
	ClearChartOfAccounts(ctx context.Context, tenantID uuid.UUID) (int64, error)
	SumEntries(ctx context.Context, tenantID uuid.UUID, kind EntryKind) (int64, error)
	RecentEntries(ctx context.Context, tenantID uuid.UUID, kind EntryKind, limit int) ([]JournalEntry, error)
	CountPendingInvoices(ctx context.Context, tenantID uuid.UUID) (int, error)
	CountCustomers(ctx context.Context, tenantID uuid.UUID) (int, error)
	CountProducts(ctx context.Context, tenantID uuid.UUID) (int, error)
}

// Handlers implements one dispatch handler per action type. Replies are
// user-facing Spanish; errors are reserved for infrastructure failures.
type Handlers struct {
	store  Store
	logger *slog.Logger
}

// NewHandlers creates the ledger-backed handler set.
func NewHandlers(store Store, logger *slog.Logger) *Handlers {
	return &Handlers{store: store, logger: logger}
}

// RegisterAll binds a handler for every dispatchable action type.
func (h *Handlers) RegisterAll(d *dispatch.Dispatcher) {
	d.Register(interpret.ActionRecordIncome, dispatch.HandlerFunc(h.RecordIncome))
	d.Register(interpret.ActionRecordPayment, dispatch.HandlerFunc(h.RecordPayment))
	d.Register(interpret.ActionRecordExpenseTransaction, dispatch.HandlerFunc(h.RecordExpenseTransaction))
	d.Register(interpret.ActionCreateInvoice, dispatch.HandlerFunc(h.CreateInvoice))
	d.Register(interpret.ActionCreateExpense, dispatch.HandlerFunc(h.CreateExpense))
	d.Register(interpret.ActionCreateCustomer, dispatch.HandlerFunc(h.CreateCustomer))
	d.Register(interpret.ActionCreateProduct, dispatch.HandlerFunc(h.CreateProduct))
	d.Register(interpret.ActionCreateChartOfAccounts, dispatch.HandlerFunc(h.CreateChartOfAccounts))
	d.Register(interpret.ActionClearChartOfAccounts, dispatch.HandlerFunc(h.ClearChartOfAccounts))
	d.Register(interpret.ActionGetReport, dispatch.HandlerFunc(h.GetReport))
}

// amountCents reads the canonical amount the classifier extracted. A missing
// or malformed value records as zero rather than failing the whole action.
func amountCents(action interpret.Action) int64 {
	raw, ok := action.Params[interpret.ParamAmount]
	if !ok {
		return 0
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0
	}
	return money.CentsFromDecimal(d)
}

func (h *Handlers) record(ctx context.Context, action interpret.Action, userID, tenantID uuid.UUID, kind EntryKind, book LedgerName) (int64, error) {
	cents := amountCents(action)
	_, err := h.store.InsertEntry(ctx, JournalEntry{
		TenantID:    tenantID,
		UserID:      userID,
		Kind:        kind,
		Ledger:      book,
		AmountMinor: cents,
		Memo:        action.Params[interpret.ParamMessage],
	})
	return cents, err
}

// RecordIncome posts an income entry to the transactions book.
func (h *Handlers) RecordIncome(ctx context.Context, action interpret.Action, userID, tenantID uuid.UUID) (string, error) {
	cents, err := h.record(ctx, action, userID, tenantID, EntryIncome, LedgerTransactions)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Registré un ingreso de %s.", money.DisplayCents(cents)), nil
}

// RecordPayment posts an expense entry to the expenses book.
func (h *Handlers) RecordPayment(ctx context.Context, action interpret.Action, userID, tenantID uuid.UUID) (string, error) {
	cents, err := h.record(ctx, action, userID, tenantID, EntryExpense, LedgerExpenses)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Registré un pago de %s en tus gastos.", money.DisplayCents(cents)), nil
}

// RecordExpenseTransaction posts an expense entry to the transactions book,
// honoring the user's explicit destination request.
func (h *Handlers) RecordExpenseTransaction(ctx context.Context, action interpret.Action, userID, tenantID uuid.UUID) (string, error) {
	cents, err := h.record(ctx, action, userID, tenantID, EntryExpense, LedgerTransactions)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Registré un gasto de %s en transacciones.", money.DisplayCents(cents)), nil
}

// CreateExpense records a standalone expense row; same book as payments.
func (h *Handlers) CreateExpense(ctx context.Context, action interpret.Action, userID, tenantID uuid.UUID) (string, error) {
	cents, err := h.record(ctx, action, userID, tenantID, EntryExpense, LedgerExpenses)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Creé un gasto de %s.", money.DisplayCents(cents)), nil
}

// CreateInvoice opens a draft invoice to be completed from the invoices
// screen.
func (h *Handlers) CreateInvoice(ctx context.Context, action interpret.Action, userID, tenantID uuid.UUID) (string, error) {
	id, err := h.store.CreateInvoice(ctx, tenantID, userID, action.Params[interpret.ParamMessage])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Abrí una factura en borrador (folio %s). Completa los datos cuando quieras.", shortID(id)), nil
}

// CreateCustomer registers a placeholder customer; the chat flow does not
// extract names.
func (h *Handlers) CreateCustomer(ctx context.Context, _ interpret.Action, _, tenantID uuid.UUID) (string, error) {
	id, err := h.store.CreateCustomer(ctx, tenantID, "Cliente nuevo")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Creé un cliente (%s). Ponle nombre desde el panel de clientes.", shortID(id)), nil
}

// CreateProduct registers a placeholder product or service.
func (h *Handlers) CreateProduct(ctx context.Context, _ interpret.Action, _, tenantID uuid.UUID) (string, error) {
	id, err := h.store.CreateProduct(ctx, tenantID, "Producto nuevo")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Creé un producto (%s). Puedes editarlo desde el catálogo.", shortID(id)), nil
}

// CreateChartOfAccounts seeds the default chart for the tenant.
func (h *Handlers) CreateChartOfAccounts(ctx context.Context, _ interpret.Action, _, tenantID uuid.UUID) (string, error) {
	created, err := h.store.SeedChartOfAccounts(ctx, tenantID)
	if err != nil {
		return "", err
	}
	if created == 0 {
		return "Tu catálogo de cuentas ya existía; no agregué nada.", nil
	}
	return fmt.Sprintf("Creé el catálogo de cuentas con %d cuentas base.", created), nil
}

// ClearChartOfAccounts wipes the tenant's chart. An already-empty chart is
// an expected outcome, not an error.
func (h *Handlers) ClearChartOfAccounts(ctx context.Context, _ interpret.Action, _, tenantID uuid.UUID) (string, error) {
	deleted, err := h.store.ClearChartOfAccounts(ctx, tenantID)
	if err != nil {
		return "", err
	}
	if deleted == 0 {
		return "Tu catálogo de cuentas ya estaba vacío.", nil
	}
	return fmt.Sprintf("Eliminé %d cuentas del catálogo.", deleted), nil
}

// GetReport answers a free-text report query with the tenant's totals. The
// query string is logged for future refinement but the answer is always the
// overall summary.
func (h *Handlers) GetReport(ctx context.Context, action interpret.Action, _, tenantID uuid.UUID) (string, error) {
	h.logger.Debug("report query", "query", action.Params[interpret.ParamQuery])

	income, err := h.store.SumEntries(ctx, tenantID, EntryIncome)
	if err != nil {
		return "", err
	}
	expenses, err := h.store.SumEntries(ctx, tenantID, EntryExpense)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Este es tu resumen: ingresos %s, gastos %s, utilidad %s.",
		money.DisplayCents(income),
		money.DisplayCents(expenses),
		money.DisplayCents(income-expenses)), nil
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
