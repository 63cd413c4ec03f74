package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taller-system/internal/entities"
	apperrors "taller-system/pkg/errors"
)

type BranchRepositoryInterface interface {
	GetBranches(ctx context.Context) ([]entities.Branch, error)
	FindBranch(ctx context.Context, id uint64) (*entities.Branch, error)
}

type BranchRepository struct {
	storage *pgxpool.Pool
}

func NewBranchRepository(storage *pgxpool.Pool) BranchRepositoryInterface {
	return &BranchRepository{storage: storage}
}

func (r *BranchRepository) GetBranches(ctx context.Context) ([]entities.Branch, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, nombre, direccion, telefono FROM sucursales ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	branches := []entities.Branch{}
	for rows.Next() {
		var b entities.Branch
		if err := rows.Scan(&b.ID, &b.Nombre, &b.Direccion, &b.Telefono); err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}
	return branches, rows.Err()
}

func (r *BranchRepository) FindBranch(ctx context.Context, id uint64) (*entities.Branch, error) {
	var b entities.Branch
	err := r.storage.QueryRow(ctx,
		`SELECT id, nombre, direccion, telefono FROM sucursales WHERE id = $1`, id).
		Scan(&b.ID, &b.Nombre, &b.Direccion, &b.Telefono)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
