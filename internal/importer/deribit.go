package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pnlfolio/pnlfolio/internal/model"
)

// Column names as exported by Deribit. Matching is exact after
// trimming surrounding whitespace from the header cells.
const (
	colDate     = "Date"
	colType     = "Type"
	colCashFlow = "Cash Flow"
	colChange   = "Change"
	colFee      = "Fee Charged"
	colIndex    = "Index Price"
)

// deribitDateLayouts are tried in order. The account-history export
// writes dates like "20 Dec 2025 08:00:00"; older variants use ISO
// forms.
var deribitDateLayouts = []string{
	"2 Jan 2006 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// DeribitParser parses Deribit transaction-log CSV exports.
//
// The export variants differ in which columns they carry: the gross
// amount appears as either "Cash Flow" or "Change", and "Type",
// "Fee Charged" and "Index Price" may be absent entirely. Missing
// amount cells are zero; a missing optional column is tolerated and
// recorded on the result so the pipeline can degrade explicitly.
type DeribitParser struct {
	// DateLayouts overrides the accepted date formats. Empty means
	// the built-in Deribit layouts.
	DateLayouts []string
}

// Format returns the parser name.
func (p *DeribitParser) Format() string { return "deribit" }

// Parse reads a Deribit CSV and returns the normalized log, sorted
// ascending by timestamp (stable, ties keep file order).
func (p *DeribitParser) Parse(r io.Reader) (*model.TransactionLog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // variants differ in column count

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading deribit CSV: %w", err)
	}

	if len(records) == 0 {
		return &model.TransactionLog{}, nil
	}

	cols := headerIndex(records[0])
	dateIdx, ok := cols[colDate]
	if !ok {
		return nil, fmt.Errorf("%w: no %q column in header", ErrMalformedInput, colDate)
	}

	typeIdx, hasType := cols[colType]
	feeIdx, hasFee := cols[colFee]
	priceIdx, hasPrice := cols[colIndex]

	// "Cash Flow" and "Change" are interchangeable names for the
	// gross amount; prefer the former when both are present.
	amountIdx, hasAmount := cols[colCashFlow]
	if !hasAmount {
		amountIdx, hasAmount = cols[colChange]
	}

	layouts := p.DateLayouts
	if len(layouts) == 0 {
		layouts = deribitDateLayouts
	}

	log := &model.TransactionLog{
		HasTypeColumn:  hasType,
		HasPriceColumn: hasPrice,
	}

	for i, row := range records[1:] {
		rec := model.TransactionRecord{}

		ts, err := parseDate(layouts, cell(row, dateIdx))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rec.Timestamp = ts

		if hasType {
			rec.Type = cell(row, typeIdx)
		}
		if hasAmount {
			if rec.CashFlow, err = parseAmount(cell(row, amountIdx)); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+2, err)
			}
		}
		if hasFee {
			if rec.Fee, err = parseAmount(cell(row, feeIdx)); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+2, err)
			}
		}
		if hasPrice {
			if rec.IndexPrice, err = parseAmount(cell(row, priceIdx)); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+2, err)
			}
		}

		log.Records = append(log.Records, rec)
	}

	// Cumulative sums and price forward-fill both depend on this
	// ordering; ties keep original row order.
	sort.SliceStable(log.Records, func(a, b int) bool {
		return log.Records[a].Timestamp.Before(log.Records[b].Timestamp)
	})

	return log, nil
}

// headerIndex maps trimmed column names to their position.
func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	return cols
}

// cell returns the trimmed value at idx, or "" for short rows.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseDate(layouts []string, value string) (time.Time, error) {
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparsable date %q", ErrMalformedInput, value)
}

// parseAmount parses a decimal cell; empty means zero.
func parseAmount(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: unparsable amount %q", ErrMalformedInput, value)
	}
	return d, nil
}
