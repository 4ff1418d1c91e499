package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"resty.dev/v3"

	"statementfetcher/internal/provider"
	"statementfetcher/internal/ratelimit"
	"statementfetcher/internal/statement"
)

const quoteSummaryPath = "/v10/finance/quoteSummary/{symbol}"

// Client fetches financial statements and quote snapshots from the
// Yahoo Finance quoteSummary API.
type Client struct {
	client  *resty.Client
	limiter *ratelimit.Limiter
}

// Compile-time assertion
var _ provider.Provider = (*Client)(nil)

// NewClient creates a Yahoo Finance client against the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		client:  provider.NewHTTPClient(baseURL),
		limiter: ratelimit.GetLimiter(),
	}
}

// IncomeStatement retrieves the annual income statement for a symbol.
func (c *Client) IncomeStatement(ctx context.Context, symbol string) (statement.Raw, error) {
	return c.fetchStatement(ctx, symbol, "incomeStatementHistory", "incomeStatementHistory", incomeFields)
}

// BalanceSheet retrieves the annual balance sheet for a symbol.
func (c *Client) BalanceSheet(ctx context.Context, symbol string) (statement.Raw, error) {
	return c.fetchStatement(ctx, symbol, "balanceSheetHistory", "balanceSheetStatements", balanceSheetFields)
}

// CashFlow retrieves the annual cash flow statement for a symbol.
func (c *Client) CashFlow(ctx context.Context, symbol string) (statement.Raw, error) {
	return c.fetchStatement(ctx, symbol, "cashflowStatementHistory", "cashflowStatements", cashFlowFields)
}

// quoteSummaryEnvelope is the outer shape of every quoteSummary response
type quoteSummaryEnvelope struct {
	QuoteSummary struct {
		Result []json.RawMessage `json:"result"`
		Error  *apiError         `json:"error"`
	} `json:"quoteSummary"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// wireValue is Yahoo's numeric wrapper: {"raw": 27237000000, "fmt": "27.24B"}.
// Missing values arrive as {} or are absent entirely, so Raw is a pointer.
type wireValue struct {
	Raw *json.Number `json:"raw"`
	Fmt string       `json:"fmt"`
}

func (c *Client) quoteSummary(ctx context.Context, symbol, module string) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx, ratelimit.APIYahooQuoteSummary); err != nil {
		return nil, err
	}

	var envelope quoteSummaryEnvelope

	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		SetQueryParam("modules", module).
		SetResult(&envelope).
		Get(quoteSummaryPath)

	if err != nil {
		return nil, provider.NewNetworkError(err)
	}

	if !resp.IsSuccess() {
		return nil, provider.ClassifyHTTPError(resp.StatusCode())
	}

	if apiErr := envelope.QuoteSummary.Error; apiErr != nil {
		return nil, provider.NewValidationError(
			fmt.Sprintf("quoteSummary %s failed for %s: %s: %s", module, symbol, apiErr.Code, apiErr.Description))
	}

	if len(envelope.QuoteSummary.Result) == 0 {
		// No data for this symbol; callers treat it as an empty module.
		return nil, nil
	}

	return envelope.QuoteSummary.Result[0], nil
}

func (c *Client) fetchStatement(ctx context.Context, symbol, module, listKey string, fields []fieldDef) (statement.Raw, error) {
	result, err := c.quoteSummary(ctx, symbol, module)
	if err != nil {
		return statement.Raw{}, fmt.Errorf("failed to fetch %s for %s: %w", module, symbol, err)
	}
	if result == nil {
		return statement.Raw{}, nil
	}

	periods, err := decodePeriods(result, module, listKey)
	if err != nil {
		return statement.Raw{}, fmt.Errorf("failed to decode %s for %s: %w", module, symbol, err)
	}

	return buildRaw(periods, fields), nil
}

// decodePeriods digs the per-period objects out of a quoteSummary result.
// A missing module or list is not an error; the statement is just empty.
func decodePeriods(result json.RawMessage, module, listKey string) ([]map[string]json.RawMessage, error) {
	var modules map[string]json.RawMessage
	if err := json.Unmarshal(result, &modules); err != nil {
		return nil, err
	}

	moduleRaw, ok := modules[module]
	if !ok {
		return nil, nil
	}

	var lists map[string]json.RawMessage
	if err := json.Unmarshal(moduleRaw, &lists); err != nil {
		return nil, err
	}

	listRaw, ok := lists[listKey]
	if !ok {
		return nil, nil
	}

	var periods []map[string]json.RawMessage
	if err := json.Unmarshal(listRaw, &periods); err != nil {
		return nil, err
	}

	return periods, nil
}

// buildRaw pivots Yahoo's one-object-per-period statements into a line
// items by periods table. Periods keep the delivered order (most recent
// first); line items follow the canonical field order for the statement
// kind, restricted to fields present in at least one period.
func buildRaw(periods []map[string]json.RawMessage, fields []fieldDef) statement.Raw {
	var endDates []time.Time
	cellsByField := make([][]decimal.NullDecimal, len(fields))
	present := make([]bool, len(fields))

	for _, period := range periods {
		endDate, ok := decodeEndDate(period["endDate"])
		if !ok {
			continue
		}
		endDates = append(endDates, endDate)

		for i, field := range fields {
			value, ok := decodeNumber(period[field.key])
			cellsByField[i] = append(cellsByField[i], value)
			if ok {
				present[i] = true
			}
		}
	}

	if len(endDates) == 0 {
		return statement.Raw{}
	}

	raw := statement.Raw{Periods: endDates}
	for i, field := range fields {
		if !present[i] {
			continue
		}
		raw.LineItems = append(raw.LineItems, field.label)
		raw.Cells = append(raw.Cells, cellsByField[i])
	}

	return raw
}

// decodeEndDate reads a period end-date wrapper whose raw value is epoch seconds
func decodeEndDate(msg json.RawMessage) (time.Time, bool) {
	if len(msg) == 0 {
		return time.Time{}, false
	}

	var wrapped struct {
		Raw *int64 `json:"raw"`
	}
	if err := json.Unmarshal(msg, &wrapped); err != nil || wrapped.Raw == nil {
		return time.Time{}, false
	}

	return time.Unix(*wrapped.Raw, 0).UTC(), true
}

// decodeNumber reads a numeric wrapper into a decimal, preserving the
// provider's exact representation. Absent or empty wrappers are missing.
func decodeNumber(msg json.RawMessage) (decimal.NullDecimal, bool) {
	if len(msg) == 0 {
		return decimal.NullDecimal{}, false
	}

	var wrapped wireValue
	if err := json.Unmarshal(msg, &wrapped); err != nil || wrapped.Raw == nil {
		return decimal.NullDecimal{}, false
	}

	d, err := decimal.NewFromString(wrapped.Raw.String())
	if err != nil {
		return decimal.NullDecimal{}, false
	}

	return decimal.NullDecimal{Decimal: d, Valid: true}, true
}
