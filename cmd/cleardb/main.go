// Command cleardb wipes every application table, children before
// parents. Development utility; refuses to run unless --yes is given.
package main

import (
	"flag"
	"log"

	"go-inventory-genie/internal/model"
	"go-inventory-genie/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	confirm := flag.Bool("yes", false, "actually delete all data")
	flag.Parse()

	if !*confirm {
		log.Fatal("refusing to wipe the database without --yes")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	db := database.ConnectDB()

	tables := []struct {
		name  string
		model interface{}
	}{
		{"sales", &model.Sale{}},
		{"product_batches", &model.ProductBatch{}},
		{"base_products", &model.BaseProduct{}},
		{"legacy_products", &model.LegacyProduct{}},
		{"report_snapshots", &model.ReportSnapshot{}},
		{"users", &model.User{}},
	}

	for _, t := range tables {
		res := db.Where("1 = 1").Delete(t.model)
		if res.Error != nil {
			log.Printf("failed to clear %s: %v", t.name, res.Error)
			continue
		}
		log.Printf("cleared %s (%d rows)", t.name, res.RowsAffected)
	}

	log.Println("Database cleared")
}
