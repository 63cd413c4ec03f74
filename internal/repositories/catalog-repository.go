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

type CatalogRepositoryInterface interface {
	ListStates(ctx context.Context) ([]entities.EquipmentState, error)
	FindState(ctx context.Context, id uint64) (*entities.EquipmentState, error)
	ListRAMTypes(ctx context.Context) ([]entities.RAMType, error)
	FindRAMType(ctx context.Context, id uint64) (*entities.RAMType, error)
	ListStorageTypes(ctx context.Context) ([]entities.StorageType, error)
	FindStorageType(ctx context.Context, id uint64) (*entities.StorageType, error)
	ListMaintenanceTypes(ctx context.Context) ([]entities.MaintenanceType, error)
	FindMaintenanceType(ctx context.Context, id uint64) (*entities.MaintenanceType, error)
}

type CatalogRepository struct {
	storage *pgxpool.Pool
}

func NewCatalogRepository(storage *pgxpool.Pool) CatalogRepositoryInterface {
	return &CatalogRepository{storage: storage}
}

func (r *CatalogRepository) ListStates(ctx context.Context) ([]entities.EquipmentState, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, nombre, es_terminal FROM catalogo_estados ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	states := []entities.EquipmentState{}
	for rows.Next() {
		var s entities.EquipmentState
		if err := rows.Scan(&s.ID, &s.Nombre, &s.EsTerminal); err != nil {
			return nil, err
		}
		states = append(states, s)
	}
	return states, rows.Err()
}

func (r *CatalogRepository) FindState(ctx context.Context, id uint64) (*entities.EquipmentState, error) {
	var s entities.EquipmentState
	err := r.storage.QueryRow(ctx,
		`SELECT id, nombre, es_terminal FROM catalogo_estados WHERE id = $1`, id).
		Scan(&s.ID, &s.Nombre, &s.EsTerminal)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning state: %w", err)
	}
	return &s, nil
}

func (r *CatalogRepository) ListRAMTypes(ctx context.Context) ([]entities.RAMType, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, descripcion FROM catalogo_memoria_ram ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []entities.RAMType{}
	for rows.Next() {
		var t entities.RAMType
		if err := rows.Scan(&t.ID, &t.Descripcion); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *CatalogRepository) FindRAMType(ctx context.Context, id uint64) (*entities.RAMType, error) {
	var t entities.RAMType
	err := r.storage.QueryRow(ctx,
		`SELECT id, descripcion FROM catalogo_memoria_ram WHERE id = $1`, id).
		Scan(&t.ID, &t.Descripcion)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *CatalogRepository) ListStorageTypes(ctx context.Context) ([]entities.StorageType, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, descripcion FROM catalogo_almacenamiento ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []entities.StorageType{}
	for rows.Next() {
		var t entities.StorageType
		if err := rows.Scan(&t.ID, &t.Descripcion); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *CatalogRepository) FindStorageType(ctx context.Context, id uint64) (*entities.StorageType, error) {
	var t entities.StorageType
	err := r.storage.QueryRow(ctx,
		`SELECT id, descripcion FROM catalogo_almacenamiento WHERE id = $1`, id).
		Scan(&t.ID, &t.Descripcion)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *CatalogRepository) ListMaintenanceTypes(ctx context.Context) ([]entities.MaintenanceType, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, descripcion, costo FROM catalogo_mantenimiento ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []entities.MaintenanceType{}
	for rows.Next() {
		var t entities.MaintenanceType
		if err := rows.Scan(&t.ID, &t.Descripcion, &t.Costo); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *CatalogRepository) FindMaintenanceType(ctx context.Context, id uint64) (*entities.MaintenanceType, error) {
	var t entities.MaintenanceType
	err := r.storage.QueryRow(ctx,
		`SELECT id, descripcion, costo FROM catalogo_mantenimiento WHERE id = $1`, id).
		Scan(&t.ID, &t.Descripcion, &t.Costo)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
