package main

import (
	"log"

	"pharmadesk/m/internal/config"
	"pharmadesk/m/internal/database"
	"pharmadesk/m/internal/migrations"
	"pharmadesk/m/internal/persist"
	"pharmadesk/m/internal/seed"
	"pharmadesk/m/internal/store"
)

func main() {
	cfg := config.Load()

	var st *store.Store
	if cfg.Persist {
		db := database.Connect(cfg.DatabaseDSN)
		defer db.Close()
		migrations.Run(db)

		var err error
		st, err = store.Open(persist.NewSQLite(db, cfg.StoreName))
		if err != nil {
			log.Fatalf("unable to open store: %v", err)
		}
	} else {
		st = store.New()
	}

	seed.LoadMedicines(st, "assets/medicines.csv")

	log.Printf("pharmacy store %q ready: %d medicines, %d low on stock",
		cfg.StoreName, len(st.Medicines()), len(st.LowStock()))
}
