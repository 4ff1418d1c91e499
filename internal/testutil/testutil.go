package testutil

import (
	"context"
	"time"

	"statementfetcher/internal/provider"
	"statementfetcher/internal/statement"
)

// MockProvider is a mock implementation of the Provider interface for testing
type MockProvider struct {
	IncomeStatementFunc func(ctx context.Context, symbol string) (statement.Raw, error)
	BalanceSheetFunc    func(ctx context.Context, symbol string) (statement.Raw, error)
	CashFlowFunc        func(ctx context.Context, symbol string) (statement.Raw, error)
	QuoteFunc           func(ctx context.Context, symbol string) (map[string]any, error)
}

// Compile-time assertion
var _ provider.Provider = (*MockProvider)(nil)

// IncomeStatement implements the Provider interface
func (m *MockProvider) IncomeStatement(ctx context.Context, symbol string) (statement.Raw, error) {
	if m.IncomeStatementFunc != nil {
		return m.IncomeStatementFunc(ctx, symbol)
	}
	return statement.Raw{}, nil
}

// BalanceSheet implements the Provider interface
func (m *MockProvider) BalanceSheet(ctx context.Context, symbol string) (statement.Raw, error) {
	if m.BalanceSheetFunc != nil {
		return m.BalanceSheetFunc(ctx, symbol)
	}
	return statement.Raw{}, nil
}

// CashFlow implements the Provider interface
func (m *MockProvider) CashFlow(ctx context.Context, symbol string) (statement.Raw, error) {
	if m.CashFlowFunc != nil {
		return m.CashFlowFunc(ctx, symbol)
	}
	return statement.Raw{}, nil
}

// Quote implements the Provider interface
func (m *MockProvider) Quote(ctx context.Context, symbol string) (map[string]any, error) {
	if m.QuoteFunc != nil {
		return m.QuoteFunc(ctx, symbol)
	}
	return map[string]any{}, nil
}

// NewStaticProvider creates a mock provider that always returns the
// given statements and quote snapshot.
func NewStaticProvider(income, balance, cash statement.Raw, quote map[string]any) *MockProvider {
	return &MockProvider{
		IncomeStatementFunc: func(context.Context, string) (statement.Raw, error) { return income, nil },
		BalanceSheetFunc:    func(context.Context, string) (statement.Raw, error) { return balance, nil },
		CashFlowFunc:        func(context.Context, string) (statement.Raw, error) { return cash, nil },
		QuoteFunc:           func(context.Context, string) (map[string]any, error) { return quote, nil },
	}
}

// FixedClock returns Start on the first reading and Start plus Step on
// every reading after that, so a run gets a deterministic duration.
type FixedClock struct {
	Start time.Time
	Step  time.Duration

	calls int
}

// Now implements the run.Clock interface
func (c *FixedClock) Now() time.Time {
	c.calls++
	if c.calls == 1 {
		return c.Start
	}
	return c.Start.Add(c.Step)
}
