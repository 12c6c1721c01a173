package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxo-dev/fluxo/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func tx(d time.Time, amount string, status model.TxStatus) model.Transaction {
	return model.Transaction{Date: d, Amount: dec(amount), Status: status, Source: "test"}
}

func TestAggregate_GapFree(t *testing.T) {
	txns := []model.Transaction{
		tx(date(2024, 2, 1), "100", model.StatusRealized),
		tx(date(2024, 2, 5), "-40", model.StatusRealized),
	}
	buckets := Aggregate(txns, date(2024, 2, 3))
	require.Len(t, buckets, 5, "every day from 01 to 05")
	for i, b := range buckets {
		assert.True(t, b.Date.Equal(date(2024, 2, 1+i)))
	}
	assert.Equal(t, "100", buckets[0].InflowRealized.String())
	assert.True(t, buckets[1].NetRealized.IsZero(), "empty day is zero-filled")
	assert.Equal(t, "40", buckets[4].OutflowRealized.String())
	assert.Equal(t, "-40", buckets[4].NetRealized.String())
}

func TestAggregate_AnchorExtendsSpan(t *testing.T) {
	txns := []model.Transaction{tx(date(2024, 3, 10), "-300", model.StatusProjected)}

	buckets := Aggregate(txns, date(2024, 3, 1))
	require.Len(t, buckets, 10, "anchor before the span pulls the range back")
	assert.True(t, buckets[0].Date.Equal(date(2024, 3, 1)))

	buckets = Aggregate(txns, date(2024, 3, 15))
	require.Len(t, buckets, 6, "anchor after the span pushes the range forward")
	assert.True(t, buckets[5].Date.Equal(date(2024, 3, 15)))
}

func TestAggregate_NoTransactions(t *testing.T) {
	buckets := Aggregate(nil, date(2024, 1, 1))
	require.Len(t, buckets, 1, "span is the anchor day alone")
	assert.True(t, buckets[0].NetRealized.IsZero())

	assert.Nil(t, Aggregate(nil, time.Time{}))
}

func TestAggregate_GroupsByStatusAndDirection(t *testing.T) {
	d := date(2024, 2, 1)
	buckets := Aggregate([]model.Transaction{
		tx(d, "2500", model.StatusRealized),
		tx(d, "-1000", model.StatusRealized),
		tx(d, "700", model.StatusProjected),
		tx(d, "-300", model.StatusProjected),
	}, d)
	require.Len(t, buckets, 1)
	b := buckets[0]
	assert.Equal(t, "2500", b.InflowRealized.String())
	assert.Equal(t, "1000", b.OutflowRealized.String())
	assert.Equal(t, "700", b.InflowProjected.String())
	assert.Equal(t, "300", b.OutflowProjected.String())
	assert.Equal(t, "1500", b.NetRealized.String())
	assert.Equal(t, "400", b.NetProjected.String())
}

// Scenario from the original workbook: one payment of 1.000,00 and one
// receipt of 2.500,00 on the same day, opening 500 anchored that day.
func TestApplyAnchor_SameDayScenario(t *testing.T) {
	d := date(2024, 2, 1)
	buckets := Aggregate([]model.Transaction{
		tx(d, "-1000", model.StatusRealized),
		tx(d, "2500", model.StatusRealized),
	}, d)
	ApplyAnchor(buckets, d, dec("500"))

	require.Len(t, buckets, 1)
	assert.Equal(t, "1000", buckets[0].OutflowRealized.String())
	assert.Equal(t, "2500", buckets[0].InflowRealized.String())
	assert.Equal(t, "2000", buckets[0].CumulativeBalance.String())
}

// A payable due 2024-03-10, anchored 2024-03-01 at zero: projected flow never
// moves the realized balance, only the projected overlay.
func TestApplyAnchor_ProjectedOverlay(t *testing.T) {
	anchor := date(2024, 3, 1)
	buckets := Aggregate([]model.Transaction{
		tx(date(2024, 3, 10), "-300", model.StatusProjected),
	}, anchor)
	ApplyAnchor(buckets, anchor, decimal.Zero)

	require.Len(t, buckets, 10)
	for _, b := range buckets {
		assert.True(t, b.CumulativeBalance.IsZero(), "realized balance unchanged on %s", b.Date)
	}
	assert.Equal(t, "300", buckets[9].OutflowProjected.String())
	assert.True(t, buckets[8].ProjectedBalance.IsZero())
	assert.Equal(t, "-300", buckets[9].ProjectedBalance.String())
}

func TestApplyAnchor_BackwardFromAnchor(t *testing.T) {
	anchor := date(2024, 2, 5)
	buckets := Aggregate([]model.Transaction{
		tx(date(2024, 2, 1), "100", model.StatusRealized),
		tx(date(2024, 2, 3), "-30", model.StatusRealized),
		tx(date(2024, 2, 5), "50", model.StatusRealized),
	}, anchor)
	ApplyAnchor(buckets, anchor, dec("1000"))

	require.Len(t, buckets, 5)
	// Anchor identity.
	assert.Equal(t, "1050", buckets[4].CumulativeBalance.String())
	// Walking backward, each step removes that neighbor's realized net.
	assert.Equal(t, "1000", buckets[3].CumulativeBalance.String())
	assert.Equal(t, "1000", buckets[2].CumulativeBalance.String())
	assert.Equal(t, "1030", buckets[1].CumulativeBalance.String())
	assert.Equal(t, "1030", buckets[0].CumulativeBalance.String())
}

func TestApplyAnchor_AnchorIdentityEverywhere(t *testing.T) {
	txns := []model.Transaction{
		tx(date(2024, 2, 2), "200", model.StatusRealized),
		tx(date(2024, 2, 4), "-80", model.StatusRealized),
		tx(date(2024, 2, 6), "15", model.StatusRealized),
	}
	anchors := []time.Time{
		date(2024, 1, 28), // before the span
		date(2024, 2, 4),  // inside
		date(2024, 2, 9),  // after
	}
	opening := dec("500")
	for _, anchor := range anchors {
		buckets := Aggregate(txns, anchor)
		ApplyAnchor(buckets, anchor, opening)

		var at model.DailyBucket
		for _, b := range buckets {
			if b.Date.Equal(anchor) {
				at = b
			}
		}
		assert.True(t, at.CumulativeBalance.Equal(opening.Add(at.NetRealized)),
			"anchor %s", anchor.Format("2006-01-02"))

		// Neighbor steps change the balance by exactly that neighbor's net.
		for i := 1; i < len(buckets); i++ {
			diff := buckets[i].CumulativeBalance.Sub(buckets[i-1].CumulativeBalance)
			assert.True(t, diff.Equal(buckets[i].NetRealized),
				"anchor %s day %s", anchor.Format("2006-01-02"), buckets[i].Date.Format("2006-01-02"))
		}
		assert.Empty(t, Verify(buckets, anchor, opening))
	}
}

func TestSummarize(t *testing.T) {
	anchor := date(2024, 2, 1)
	buckets := Aggregate([]model.Transaction{
		tx(date(2024, 2, 1), "-700", model.StatusRealized),
		tx(date(2024, 2, 3), "300", model.StatusRealized),
		tx(date(2024, 2, 4), "-50", model.StatusProjected),
	}, anchor)
	opening := dec("500")
	ApplyAnchor(buckets, anchor, opening)

	k := Summarize(buckets, opening)
	assert.Equal(t, "-200", k.MinimumCumulativeBalance.String(), "shortfall before the receipt")
	assert.Equal(t, "100", k.FinalBalance.String())
	assert.Equal(t, "-400", k.PeriodNetRealized.String())
	assert.Equal(t, "300", k.TotalInflowRealized.String())
	assert.Equal(t, "700", k.TotalOutflowRealized.String())
	assert.Equal(t, "50", k.TotalOutflowProjected.String())
	assert.True(t, k.TotalInflowProjected.IsZero())
}

func TestSummarize_Empty(t *testing.T) {
	k := Summarize(nil, dec("250"))
	assert.Equal(t, "250", k.FinalBalance.String())
	assert.Equal(t, "250", k.MinimumCumulativeBalance.String())
	assert.True(t, k.PeriodNetRealized.IsZero())
}

func TestVerify_FlagsTampering(t *testing.T) {
	anchor := date(2024, 2, 1)
	buckets := Aggregate([]model.Transaction{
		tx(date(2024, 2, 1), "100", model.StatusRealized),
		tx(date(2024, 2, 3), "-20", model.StatusRealized),
	}, anchor)
	ApplyAnchor(buckets, anchor, decimal.Zero)
	require.Empty(t, Verify(buckets, anchor, decimal.Zero))

	buckets[1].CumulativeBalance = dec("999")
	errs := Verify(buckets, anchor, decimal.Zero)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "does not extend neighbor")
}
