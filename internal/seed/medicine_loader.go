package seed

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"pharmadesk/m/domain"
	"pharmadesk/m/internal/store"
)

// LoadMedicines ingests the catalog CSV into the store. A store that
// already holds medicines (a restored snapshot) is left untouched so the
// catalog is not seeded twice.
func LoadMedicines(st *store.Store, csvPath string) {
	if len(st.Medicines()) > 0 {
		return
	}

	file, err := os.Open(csvPath)
	if err != nil {
		log.Printf("unable to load medicine catalog %s: %v", csvPath, err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		log.Printf("unable to read medicine header: %v", err)
		return
	}

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("unable to read medicine row: %v", err)
			continue
		}
		if len(record) < 8 {
			continue
		}
		name := strings.TrimSpace(record[0])
		if name == "" {
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil {
			log.Printf("unable to parse price for %s: %v", name, err)
			continue
		}
		stock, err := strconv.ParseInt(strings.TrimSpace(record[3]), 10, 64)
		if err != nil {
			log.Printf("unable to parse stock for %s: %v", name, err)
			continue
		}
		reorder, err := strconv.ParseInt(strings.TrimSpace(record[7]), 10, 64)
		if err != nil {
			log.Printf("unable to parse reorder level for %s: %v", name, err)
			continue
		}

		st.AddMedicine(domain.Medicine{
			Name:         name,
			Description:  strings.TrimSpace(record[1]),
			Price:        price,
			Stock:        stock,
			Category:     strings.TrimSpace(record[4]),
			ExpiryDate:   strings.TrimSpace(record[5]),
			Manufacturer: strings.TrimSpace(record[6]),
			ReorderLevel: reorder,
		})
		rows++
	}

	log.Printf("seeded medicine catalog with %d rows", rows)
}
