package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// KlineResponse is the JSON envelope returned by the provider's kline endpoint.
// Data is null when the security id is unknown.
type KlineResponse struct {
	Rc   int        `json:"rc"`
	Data *KlineData `json:"data"`
}

type KlineData struct {
	Code   string   `json:"code"`
	Market int      `json:"market"`
	Name   string   `json:"name"`
	Klines []string `json:"klines"`
}

// klineFieldCount is the shape of one kline string: date plus ten numerics,
// comma-joined in provider order (open, close, high, low, volume, amount,
// amplitude, pct_change, price_change, turnover).
const klineFieldCount = 11

// ToRecords parses the raw kline strings into normalized records, preserving
// the provider's (ascending date) order. A malformed date or row shape is an
// error; an unparseable numeric field becomes a missing value.
func (d *KlineData) ToRecords() ([]*QuoteRecord, error) {
	records := make([]*QuoteRecord, 0, len(d.Klines))
	for _, line := range d.Klines {
		r, err := parseKline(line)
		if err != nil {
			return nil, fmt.Errorf("KlineData.ToRecords: %w", err)
		}
		records = append(records, r)
	}
	return records, nil
}

func parseKline(line string) (*QuoteRecord, error) {
	fields := strings.Split(line, ",")
	if len(fields) != klineFieldCount {
		return nil, fmt.Errorf("parseKline: expected %d fields, got %d in %q", klineFieldCount, len(fields), line)
	}

	t, err := time.Parse("2006-01-02", fields[0])
	if err != nil {
		t, err = time.Parse("20060102", fields[0])
		if err != nil {
			return nil, fmt.Errorf("parseKline: failed to parse date %q: %w", fields[0], err)
		}
	}

	return &QuoteRecord{
		Date:        t.Format("2006-01-02"),
		Open:        parseNumeric(fields[1]),
		Close:       parseNumeric(fields[2]),
		High:        parseNumeric(fields[3]),
		Low:         parseNumeric(fields[4]),
		Volume:      parseNumeric(fields[5]),
		Amount:      parseNumeric(fields[6]),
		Amplitude:   parseNumeric(fields[7]),
		PctChange:   parseNumeric(fields[8]),
		PriceChange: parseNumeric(fields[9]),
		Turnover:    parseNumeric(fields[10]),
	}, nil
}

// parseNumeric coerces a provider value to float64, returning nil for anything
// that does not parse.
func parseNumeric(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &v
}
