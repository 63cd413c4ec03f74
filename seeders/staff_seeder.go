package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"taller-system/pkg/utils"
)

type staffSeed struct {
	nombre   string
	email    string
	rol      string
	password string
}

// Demo accounts for local development, one per non-admin role.
var demoStaff = []staffSeed{
	{nombre: "Técnico Demo", email: "tecnico@taller.local", rol: "tecnico", password: "tecnico123"},
	{nombre: "Ventas Demo", email: "ventas@taller.local", rol: "ventas", password: "ventas123"},
}

func seedDemoStaff(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - creating demo staff users...")

	branchID, err := defaultBranch(ctx, db)
	if err != nil {
		return err
	}

	for _, s := range demoStaff {
		var exists bool
		err := db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM usuarios WHERE email = $1)", s.email).Scan(&exists)
		if err != nil {
			return fmt.Errorf("checking for %s: %w", s.email, err)
		}
		if exists {
			log.Printf("    - %s already exists, skipping", s.email)
			continue
		}

		hash, err := utils.HashPassword(s.password)
		if err != nil {
			return err
		}

		query := `INSERT INTO usuarios (nombre, email, password_hash, rol, sucursal_id, activo)
		          VALUES ($1, $2, $3, $4, $5, TRUE)`
		if _, err := db.Exec(ctx, query, s.nombre, s.email, hash, s.rol, branchID); err != nil {
			return fmt.Errorf("creating %s: %w", s.email, err)
		}
		log.Printf("    - %s created", s.email)
	}

	return nil
}
