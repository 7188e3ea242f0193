package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pnlfolio/pnlfolio/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func rec(ts time.Time, typ, cashFlow, fee, indexPrice string) model.TransactionRecord {
	return model.TransactionRecord{
		Timestamp:  ts,
		Type:       typ,
		CashFlow:   dec(cashFlow),
		Fee:        dec(fee),
		IndexPrice: dec(indexPrice),
	}
}

func TestFilter_DropsExcludedTypes(t *testing.T) {
	log := &model.TransactionLog{
		HasTypeColumn: true,
		Records: []model.TransactionRecord{
			rec(date(2025, 1, 1), "trade", "1", "0", "0"),
			rec(date(2025, 1, 2), "Deposit", "500", "0", "0"),
			rec(date(2025, 1, 3), "WITHDRAWAL", "-500", "0", "0"),
			rec(date(2025, 1, 4), "transfer", "10", "0", "0"),
			rec(date(2025, 1, 5), "settlement", "2", "0", "0"),
		},
	}

	got := Filter(log, DefaultOptions().ExcludedTypes)
	require.Len(t, got, 2)
	assert.Equal(t, "trade", got[0].Type)
	assert.Equal(t, "settlement", got[1].Type)
}

func TestFilter_PassThroughWithoutTypeColumn(t *testing.T) {
	log := &model.TransactionLog{
		HasTypeColumn: false,
		Records: []model.TransactionRecord{
			rec(date(2025, 1, 1), "", "1", "0", "0"),
			rec(date(2025, 1, 2), "", "500", "0", "0"),
		},
	}

	got := Filter(log, DefaultOptions().ExcludedTypes)
	assert.Len(t, got, 2)
}

func TestFilter_PreservesOrder(t *testing.T) {
	log := &model.TransactionLog{
		HasTypeColumn: true,
		Records: []model.TransactionRecord{
			rec(date(2025, 1, 1), "trade", "1", "0", "0"),
			rec(date(2025, 1, 1), "deposit", "9", "0", "0"),
			rec(date(2025, 1, 1), "trade", "2", "0", "0"),
			rec(date(2025, 1, 1), "trade", "3", "0", "0"),
		},
	}

	got := Filter(log, DefaultOptions().ExcludedTypes)
	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].CashFlow.String())
	assert.Equal(t, "2", got[1].CashFlow.String())
	assert.Equal(t, "3", got[2].CashFlow.String())
}

func TestFilter_EmptyResult(t *testing.T) {
	log := &model.TransactionLog{
		HasTypeColumn: true,
		Records: []model.TransactionRecord{
			rec(date(2025, 1, 1), "deposit", "500", "0", "0"),
		},
	}

	got := Filter(log, DefaultOptions().ExcludedTypes)
	assert.Empty(t, got)
}
