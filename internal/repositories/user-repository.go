package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"taller-system/internal/entities"
	apperrors "taller-system/pkg/errors"
)

type UserRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id uint64) (*entities.User, error)
	GetUsers(ctx context.Context, limit, offset uint64) ([]entities.User, uint64, error)
	CreateUser(ctx context.Context, u entities.User) (uint64, error)
	UpdateUser(ctx context.Context, id uint64, u entities.User) error
	DeactivateUser(ctx context.Context, id uint64) error
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

const userColumns = `id, nombre, email, password_hash, rol, sucursal_id, activo, fecha_creacion`

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.Rol, &u.SucursalID, &u.Activo, &u.FechaCreacion)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return scanUser(r.storage.QueryRow(ctx,
		`SELECT `+userColumns+` FROM usuarios WHERE email = $1`, email))
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	return scanUser(r.storage.QueryRow(ctx,
		`SELECT `+userColumns+` FROM usuarios WHERE id = $1`, id))
}

func (r *UserRepository) GetUsers(ctx context.Context, limit, offset uint64) ([]entities.User, uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(id) FROM usuarios`).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.User{}, 0, nil
	}

	query := `SELECT ` + userColumns + ` FROM usuarios ORDER BY id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]entities.User, 0, limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}
	return users, total, rows.Err()
}

func (r *UserRepository) CreateUser(ctx context.Context, u entities.User) (uint64, error) {
	query := `
		INSERT INTO usuarios (nombre, email, password_hash, rol, sucursal_id, activo, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW())
		RETURNING id
	`
	var newID uint64
	err := r.storage.QueryRow(ctx, query,
		u.Nombre, u.Email, u.PasswordHash, u.Rol, u.SucursalID,
	).Scan(&newID)
	return newID, err
}

func (r *UserRepository) UpdateUser(ctx context.Context, id uint64, u entities.User) error {
	query := `
		UPDATE usuarios
		SET nombre = $1, email = $2, password_hash = $3, rol = $4, sucursal_id = $5, activo = $6
		WHERE id = $7
	`
	result, err := r.storage.Exec(ctx, query,
		u.Nombre, u.Email, u.PasswordHash, u.Rol, u.SucursalID, u.Activo, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateUser keeps the row so historical commissions stay attributable.
func (r *UserRepository) DeactivateUser(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE usuarios SET activo = FALSE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
