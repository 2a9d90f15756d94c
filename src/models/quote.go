package models

import "strings"

type StockSymbol string

// SecID returns the provider's market-qualified security id, e.g. "1.600519".
// Shanghai listings (codes starting with 6 or 9) live on market 1, everything
// else (Shenzhen, Beijing) on market 0.
func (s StockSymbol) SecID() string {
	code := string(s)
	if strings.HasPrefix(code, "6") || strings.HasPrefix(code, "9") {
		return "1." + code
	}
	return "0." + code
}

// Adjust is the provider-facing adjustment tag: "" (raw prices), "qfq"
// (forward-adjusted) or "hfq" (backward-adjusted).
type Adjust string

const (
	AdjustNone     Adjust = ""
	AdjustForward  Adjust = "qfq"
	AdjustBackward Adjust = "hfq"
)

// ResolveAdjust maps the user-facing selector to the provider tag. Unrecognized
// values fall back to forward adjustment.
func ResolveAdjust(selector string) Adjust {
	switch strings.ToLower(selector) {
	case "none", "no", "false", "":
		return AdjustNone
	case "hfq":
		return AdjustBackward
	default:
		return AdjustForward
	}
}

func (a Adjust) FilenameSuffix() string {
	if a == AdjustNone {
		return "no_adj"
	}
	return string(a)
}

// Fqt returns the provider's numeric adjustment parameter.
func (a Adjust) Fqt() string {
	switch a {
	case AdjustBackward:
		return "2"
	case AdjustForward:
		return "1"
	default:
		return "0"
	}
}

// QuoteRecord is one normalized daily row. Numeric fields are pointers so that
// unparseable provider values render as empty CSV cells instead of zeros.
type QuoteRecord struct {
	Date        string   `csv:"date"`
	Open        *float64 `csv:"open"`
	Close       *float64 `csv:"close"`
	High        *float64 `csv:"high"`
	Low         *float64 `csv:"low"`
	Volume      *float64 `csv:"volume"`
	Amount      *float64 `csv:"amount"`
	Amplitude   *float64 `csv:"amplitude"`
	PctChange   *float64 `csv:"pct_change"`
	PriceChange *float64 `csv:"price_change"`
	Turnover    *float64 `csv:"turnover"`
}

// HasEssentialData reports whether at least one of the OHLCV fields is present.
func (q *QuoteRecord) HasEssentialData() bool {
	return q.Open != nil || q.High != nil || q.Low != nil || q.Close != nil || q.Volume != nil
}

// DropEmptyRows removes rows whose OHLCV fields are all missing. Rows with
// partial essential data are kept. Order is preserved.
func DropEmptyRows(records []*QuoteRecord) []*QuoteRecord {
	out := make([]*QuoteRecord, 0, len(records))
	for _, r := range records {
		if r.HasEssentialData() {
			out = append(out, r)
		}
	}
	return out
}
