package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/FACorreiaa/contabot/pkg/money"
)

// snapshotRecentLimit bounds the recent-entry lists in the snapshot.
const snapshotRecentLimit = 5

// Snapshot is the pre-aggregated view of a tenant's finances handed to the
// conversational fallback so it can answer without touching the ledger.
type Snapshot struct {
	RevenueMinor    int64
	ExpensesMinor   int64
	PendingInvoices int
	Customers       int
	Products        int
	RecentIncome    []JournalEntry
	RecentExpenses  []JournalEntry
}

// Render produces the plain-text form the fallback consumes.
func (s Snapshot) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ingresos totales: %s\n", money.DisplayCents(s.RevenueMinor))
	fmt.Fprintf(&b, "Gastos totales: %s\n", money.DisplayCents(s.ExpensesMinor))
	fmt.Fprintf(&b, "Facturas pendientes: %d\n", s.PendingInvoices)
	fmt.Fprintf(&b, "Clientes: %d, productos: %d\n", s.Customers, s.Products)

	writeEntries := func(title string, entries []JournalEntry) {
		if len(entries) == 0 {
			return
		}
		fmt.Fprintf(&b, "%s:\n", title)
		for _, e := range entries {
			fmt.Fprintf(&b, "- %s: %s\n", e.CreatedAt.Format("2006-01-02"), money.DisplayCents(e.AmountMinor))
		}
	}
	writeEntries("Ultimos ingresos", s.RecentIncome)
	writeEntries("Ultimos gastos", s.RecentExpenses)
	return b.String()
}

// SnapshotService aggregates the snapshot from the ledger store.
type SnapshotService struct {
	store  Store
	logger *slog.Logger
}

// NewSnapshotService creates the aggregator.
func NewSnapshotService(store Store, logger *slog.Logger) *SnapshotService {
	return &SnapshotService{store: store, logger: logger}
}

// Build assembles the snapshot for one tenant.
func (s *SnapshotService) Build(ctx context.Context, tenantID uuid.UUID) (Snapshot, error) {
	var snap Snapshot
	var err error

	if snap.RevenueMinor, err = s.store.SumEntries(ctx, tenantID, EntryIncome); err != nil {
		return Snapshot{}, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	if snap.ExpensesMinor, err = s.store.SumEntries(ctx, tenantID, EntryExpense); err != nil {
		return Snapshot{}, fmt.Errorf("failed to aggregate expenses: %w", err)
	}
	if snap.PendingInvoices, err = s.store.CountPendingInvoices(ctx, tenantID); err != nil {
		return Snapshot{}, fmt.Errorf("failed to count pending invoices: %w", err)
	}
	if snap.Customers, err = s.store.CountCustomers(ctx, tenantID); err != nil {
		return Snapshot{}, fmt.Errorf("failed to count customers: %w", err)
	}
	if snap.Products, err = s.store.CountProducts(ctx, tenantID); err != nil {
		return Snapshot{}, fmt.Errorf("failed to count products: %w", err)
	}
	if snap.RecentIncome, err = s.store.RecentEntries(ctx, tenantID, EntryIncome, snapshotRecentLimit); err != nil {
		return Snapshot{}, fmt.Errorf("failed to list recent income: %w", err)
	}
	if snap.RecentExpenses, err = s.store.RecentEntries(ctx, tenantID, EntryExpense, snapshotRecentLimit); err != nil {
		return Snapshot{}, fmt.Errorf("failed to list recent expenses: %w", err)
	}
	return snap, nil
}
