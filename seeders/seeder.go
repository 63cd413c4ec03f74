package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedUsers creates the admin account. Catalogs and configuration defaults
// live in the goose migrations, so only users need a seeder.
func SeedUsers(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding users...")

	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("admin user seeder failed: %v", err)
	}

	log.Println("user seeding done")
}

// SeedDemoData creates throwaway accounts for local development.
func SeedDemoData(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding demo data...")

	if err := seedDemoStaff(ctx, db); err != nil {
		log.Fatalf("demo staff seeder failed: %v", err)
	}

	log.Println("demo data seeding done")
}
