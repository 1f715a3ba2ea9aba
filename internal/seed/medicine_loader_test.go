package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmadesk/m/domain"
	"pharmadesk/m/internal/store"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "medicines.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const catalog = `name,description,price,stock,category,expiry_date,manufacturer,reorder_level
Panadol,Pain reliever (Paracetamol 500mg),250.00,500,Pain Relief,2024-12-31,GSK,100
Ibuprofen,Pain reliever 400mg,180.00,500,Pain Relief,2024-11-30,Advil,100
`

func TestLoadMedicines(t *testing.T) {
	st := store.New()
	LoadMedicines(st, writeCatalog(t, catalog))

	medicines := st.Medicines()
	require.Len(t, medicines, 2)

	first := medicines[0]
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "Panadol", first.Name)
	assert.True(t, first.Price.Equal(decimal.NewFromFloat(250.00)))
	assert.Equal(t, int64(500), first.Stock)
	assert.Equal(t, "Pain Relief", first.Category)
	assert.Equal(t, "2024-12-31", first.ExpiryDate)
	assert.Equal(t, "GSK", first.Manufacturer)
	assert.Equal(t, int64(100), first.ReorderLevel)
}

func TestLoadMedicinesSkipsBadRows(t *testing.T) {
	bad := `name,description,price,stock,category,expiry_date,manufacturer,reorder_level
,missing name,100.00,10,Misc,2024-12-31,Acme,5
Aspirin,bad price,not-a-price,10,Pain Relief,2024-12-31,Bayer,5
Cetrizine,Antihistamine 10mg,150.00,600,Allergy,2024-10-31,UCB,120
`
	st := store.New()
	LoadMedicines(st, writeCatalog(t, bad))

	medicines := st.Medicines()
	require.Len(t, medicines, 1)
	assert.Equal(t, "Cetrizine", medicines[0].Name)
}

func TestLoadMedicinesDoesNotDoubleSeed(t *testing.T) {
	st := store.New()
	st.AddMedicine(domain.Medicine{Name: "Existing"})

	LoadMedicines(st, writeCatalog(t, catalog))

	assert.Len(t, st.Medicines(), 1)
}

func TestLoadMedicinesMissingFile(t *testing.T) {
	st := store.New()
	LoadMedicines(st, filepath.Join(t.TempDir(), "nope.csv"))
	assert.Empty(t, st.Medicines())
}
