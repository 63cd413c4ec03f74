package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taller-system/pkg/utils"
)

func seedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - creating admin user...")

	email := "admin@taller.local"
	var userID uint64
	err := db.QueryRow(ctx, "SELECT id FROM usuarios WHERE email = $1", email).Scan(&userID)
	if err == nil {
		log.Println("    - admin user already exists, skipping")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("checking for existing admin: %w", err)
	}

	branchID, err := defaultBranch(ctx, db)
	if err != nil {
		return err
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Println("    - ADMIN_PASSWORD not set, using the development default")
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	query := `INSERT INTO usuarios (nombre, email, password_hash, rol, sucursal_id, activo)
	          VALUES ($1, $2, $3, 'admin', $4, TRUE)`
	if _, err := db.Exec(ctx, query, "Administrador", email, hash, branchID); err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	log.Println("    - admin user created")
	return nil
}

func defaultBranch(ctx context.Context, db *pgxpool.Pool) (uint64, error) {
	var branchID uint64
	err := db.QueryRow(ctx, "SELECT id FROM sucursales ORDER BY id LIMIT 1").Scan(&branchID)
	if err == nil {
		return branchID, nil
	}

	query := `INSERT INTO sucursales (nombre, direccion) VALUES ('Matriz', 'Av. Principal 100')
	          ON CONFLICT (nombre) DO NOTHING`
	if _, err := db.Exec(ctx, query); err != nil {
		return 0, fmt.Errorf("inserting default branch: %w", err)
	}
	if err := db.QueryRow(ctx, "SELECT id FROM sucursales ORDER BY id LIMIT 1").Scan(&branchID); err != nil {
		return 0, fmt.Errorf("reading default branch after insert: %w", err)
	}
	return branchID, nil
}
