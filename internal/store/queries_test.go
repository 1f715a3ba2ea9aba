package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmadesk/m/domain"
)

func TestLowStock(t *testing.T) {
	st := New()
	at := st.AddMedicine(domain.Medicine{Name: "At level", Stock: 10, ReorderLevel: 10})
	below := st.AddMedicine(domain.Medicine{Name: "Below", Stock: 3, ReorderLevel: 10})
	st.AddMedicine(domain.Medicine{Name: "Plenty", Stock: 11, ReorderLevel: 10, Price: decimal.NewFromFloat(9999.00)})

	low := st.LowStock()
	require.Len(t, low, 2)
	assert.Equal(t, at.ID, low[0].ID)
	assert.Equal(t, below.ID, low[1].ID)
}

func TestSearchMedicines(t *testing.T) {
	st := New()
	st.AddMedicine(domain.Medicine{Name: "Panadol", Category: "Pain Relief"})
	st.AddMedicine(domain.Medicine{Name: "Ibuprofen", Category: "Pain Relief"})
	st.AddMedicine(domain.Medicine{Name: "Cetrizine", Category: "Allergy"})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		got := st.SearchMedicines("pAnAd")
		require.Len(t, got, 1)
		assert.Equal(t, "Panadol", got[0].Name)
	})

	t.Run("matches category and sorts by name", func(t *testing.T) {
		got := st.SearchMedicines("pain")
		require.Len(t, got, 2)
		assert.Equal(t, "Ibuprofen", got[0].Name)
		assert.Equal(t, "Panadol", got[1].Name)
	})

	t.Run("empty query lists everything up to the cap", func(t *testing.T) {
		big := New()
		for i := 0; i < 30; i++ {
			big.AddMedicine(domain.Medicine{Name: fmt.Sprintf("med-%02d", i)})
		}
		got := big.SearchMedicines("")
		assert.Len(t, got, 25)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		assert.Empty(t, st.SearchMedicines("warfarin"))
	})
}

func TestExpiringWithin(t *testing.T) {
	day := func(offset int) string {
		return time.Now().UTC().AddDate(0, 0, offset).Format("2006-01-02")
	}

	st := New()
	st.AddMedicine(domain.Medicine{Name: "Soon", ExpiryDate: day(10)})
	st.AddMedicine(domain.Medicine{Name: "Later", ExpiryDate: day(90)})
	st.AddMedicine(domain.Medicine{Name: "Soonest", ExpiryDate: day(2)})
	st.AddMedicine(domain.Medicine{Name: "Undated", ExpiryDate: ""})

	t.Run("defaults to 30 days", func(t *testing.T) {
		got := st.ExpiringWithin(0)
		require.Len(t, got, 2)
		assert.Equal(t, "Soonest", got[0].Name)
		assert.Equal(t, "Soon", got[1].Name)
	})

	t.Run("wider window includes later expiries", func(t *testing.T) {
		got := st.ExpiringWithin(120)
		assert.Len(t, got, 3)
	})
}

func TestSalesSummary(t *testing.T) {
	st := New()
	med := st.AddMedicine(domain.Medicine{Name: "A", Price: decimal.NewFromFloat(100.00), Stock: 50})

	st.AddSale([]domain.SaleItem{{MedicineID: med.ID, Quantity: 1}}, domain.PaymentCash)
	st.AddSale([]domain.SaleItem{{MedicineID: med.ID, Quantity: 2}}, domain.PaymentCard)
	refund := st.AddSale([]domain.SaleItem{{MedicineID: med.ID, Quantity: 3}}, domain.PaymentCash)

	refunded := domain.SaleRefunded
	st.UpdateSale(refund.ID, domain.SalePatch{Status: &refunded})

	t.Run("refunded sales are counted but contribute no revenue", func(t *testing.T) {
		revenue, count := st.SalesSummary(time.Time{}, time.Time{})
		assert.Equal(t, int64(3), count)
		assert.True(t, revenue.Equal(decimal.NewFromFloat(300.00)), "revenue %s", revenue)
	})

	t.Run("range bounds exclude sales outside the window", func(t *testing.T) {
		revenue, count := st.SalesSummary(time.Now().Add(time.Hour), time.Time{})
		assert.Zero(t, count)
		assert.True(t, revenue.IsZero())

		revenue, count = st.SalesSummary(time.Time{}, time.Now().Add(time.Hour))
		assert.Equal(t, int64(3), count)
		assert.True(t, revenue.Equal(decimal.NewFromFloat(300.00)))
	})
}
