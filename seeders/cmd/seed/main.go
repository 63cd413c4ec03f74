package main

import (
	"context"
	"flag"
	"log"

	"taller-system/pkg/config"
	"taller-system/pkg/database/postgresql"
	"taller-system/seeders"
)

func main() {
	runUsers := flag.Bool("users", false, "create the admin user")
	runDemo := flag.Bool("demo", false, "create demo staff accounts for local development")
	runAll := flag.Bool("all", false, "run every seeder")

	flag.Parse()

	if !*runUsers && !*runDemo && !*runAll {
		log.Println("no seeder selected")
		log.Println("")
		flag.PrintDefaults()
		log.Println("")
		log.Println("examples:")
		log.Println("  go run ./seeders/cmd/seed -users")
		log.Println("  go run ./seeders/cmd/seed -all")
		return
	}

	cfg := config.New()
	ctx := context.Background()

	dbPool, err := postgresql.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer dbPool.Close()

	if *runAll || *runUsers {
		seeders.SeedUsers(dbPool)
	}
	if *runAll || *runDemo {
		seeders.SeedDemoData(dbPool)
	}

	log.Println("seeding complete")
}
