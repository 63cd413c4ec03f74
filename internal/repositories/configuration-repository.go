package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taller-system/internal/entities"
	apperrors "taller-system/pkg/errors"
)

type ConfigurationRepositoryInterface interface {
	Find(ctx context.Context, clave string) (*entities.Configuration, error)
	Upsert(ctx context.Context, clave, valor string) error
	GetAll(ctx context.Context) ([]entities.Configuration, error)
}

type ConfigurationRepository struct {
	storage *pgxpool.Pool
}

func NewConfigurationRepository(storage *pgxpool.Pool) ConfigurationRepositoryInterface {
	return &ConfigurationRepository{storage: storage}
}

func (r *ConfigurationRepository) Find(ctx context.Context, clave string) (*entities.Configuration, error) {
	var c entities.Configuration
	err := r.storage.QueryRow(ctx,
		`SELECT clave, valor, COALESCE(descripcion, ''), fecha_actualizacion
		 FROM configuraciones WHERE clave = $1`, clave).
		Scan(&c.Clave, &c.Valor, &c.Descripcion, &c.FechaActualizacion)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning configuration: %w", err)
	}
	return &c, nil
}

func (r *ConfigurationRepository) Upsert(ctx context.Context, clave, valor string) error {
	_, err := r.storage.Exec(ctx,
		`INSERT INTO configuraciones (clave, valor, fecha_actualizacion)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (clave) DO UPDATE SET valor = EXCLUDED.valor, fecha_actualizacion = NOW()`,
		clave, valor)
	return err
}

func (r *ConfigurationRepository) GetAll(ctx context.Context) ([]entities.Configuration, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT clave, valor, COALESCE(descripcion, ''), fecha_actualizacion FROM configuraciones ORDER BY clave`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	configs := []entities.Configuration{}
	for rows.Next() {
		var c entities.Configuration
		if err := rows.Scan(&c.Clave, &c.Valor, &c.Descripcion, &c.FechaActualizacion); err != nil {
			return nil, err
		}
		configs = append(configs, c)
	}
	return configs, rows.Err()
}
