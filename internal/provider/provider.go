package provider

import (
	"context"

	"statementfetcher/internal/statement"
)

// Provider is the interface a financial-data source must implement.
// The three statement calls are required: an error from any of them is
// fatal to a run. Quote is best-effort; callers treat its error as
// "no snapshot available".
type Provider interface {
	// IncomeStatement retrieves the annual income statement for a symbol.
	IncomeStatement(ctx context.Context, symbol string) (statement.Raw, error)

	// BalanceSheet retrieves the annual balance sheet for a symbol.
	BalanceSheet(ctx context.Context, symbol string) (statement.Raw, error)

	// CashFlow retrieves the annual cash flow statement for a symbol.
	CashFlow(ctx context.Context, symbol string) (statement.Raw, error)

	// Quote retrieves a partial snapshot of live-quote fields for a symbol.
	// Fields the source cannot supply are simply absent from the map.
	Quote(ctx context.Context, symbol string) (map[string]any, error)
}

// Statement returns the raw statement of the given kind, dispatching to
// the matching Provider call.
func Statement(ctx context.Context, p Provider, symbol string, kind statement.Kind) (statement.Raw, error) {
	switch kind {
	case statement.BalanceSheet:
		return p.BalanceSheet(ctx, symbol)
	case statement.CashFlow:
		return p.CashFlow(ctx, symbol)
	default:
		return p.IncomeStatement(ctx, symbol)
	}
}
