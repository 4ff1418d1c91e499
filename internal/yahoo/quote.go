package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
)

// priceModule holds the subset of Yahoo's price module we surface in the
// run manifest. String fields arrive bare; numeric fields arrive in
// {"raw": ...} wrappers.
type priceModule struct {
	Currency                   string    `json:"currency"`
	ExchangeName               string    `json:"exchangeName"`
	QuoteType                  string    `json:"quoteType"`
	MarketCap                  wireValue `json:"marketCap"`
	RegularMarketPrice         wireValue `json:"regularMarketPrice"`
	RegularMarketPreviousClose wireValue `json:"regularMarketPreviousClose"`
	ExchangeTimezoneName       string    `json:"exchangeTimezoneName"`
}

// Quote retrieves a partial snapshot of live-quote fields for a symbol.
// Fields Yahoo does not supply are omitted from the returned map; a
// symbol with no price module at all yields an empty map.
func (c *Client) Quote(ctx context.Context, symbol string) (map[string]any, error) {
	result, err := c.quoteSummary(ctx, symbol, "price")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote for %s: %w", symbol, err)
	}

	snapshot := make(map[string]any)
	if result == nil {
		return snapshot, nil
	}

	var modules struct {
		Price *priceModule `json:"price"`
	}
	if err := json.Unmarshal(result, &modules); err != nil {
		return nil, fmt.Errorf("failed to decode quote for %s: %w", symbol, err)
	}
	if modules.Price == nil {
		return snapshot, nil
	}

	price := modules.Price
	putString(snapshot, "currency", price.Currency)
	putString(snapshot, "exchange", price.ExchangeName)
	putString(snapshot, "quote_type", price.QuoteType)
	putNumber(snapshot, "market_cap", price.MarketCap)
	putNumber(snapshot, "last_price", price.RegularMarketPrice)
	putNumber(snapshot, "previous_close", price.RegularMarketPreviousClose)
	putString(snapshot, "timezone", price.ExchangeTimezoneName)

	return snapshot, nil
}

func putString(snapshot map[string]any, key, value string) {
	if value == "" {
		return
	}
	snapshot[key] = value
}

func putNumber(snapshot map[string]any, key string, value wireValue) {
	if value.Raw == nil {
		return
	}
	f, err := value.Raw.Float64()
	if err != nil {
		return
	}
	snapshot[key] = f
}
