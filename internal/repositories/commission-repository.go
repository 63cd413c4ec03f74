package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"taller-system/internal/entities"
	apperrors "taller-system/pkg/errors"
)

type CommissionRepositoryInterface interface {
	FindByEquipment(ctx context.Context, tx pgx.Tx, equipmentID uint64) (*entities.Commission, error)
	CreateCommission(ctx context.Context, tx pgx.Tx, c entities.Commission) (uint64, error)
	GetWeeklyByUser(ctx context.Context, userID uint64, from, to time.Time) ([]entities.Commission, decimal.Decimal, error)
	GetCommissions(ctx context.Context, limit, offset uint64) ([]entities.Commission, uint64, error)
}

type CommissionRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCommissionRepository(storage *pgxpool.Pool, logger *zap.Logger) CommissionRepositoryInterface {
	return &CommissionRepository{storage: storage, logger: logger}
}

const commissionColumns = `id, usuario_id, venta_id, mantenimiento_id, equipo_id, monto, fecha_creacion`

func scanCommission(row pgx.Row) (*entities.Commission, error) {
	var c entities.Commission
	err := row.Scan(&c.ID, &c.UsuarioID, &c.VentaID, &c.MantenimientoID, &c.EquipoID, &c.Monto, &c.FechaCreacion)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning commission: %w", err)
	}
	return &c, nil
}

// FindByEquipment is the idempotency check: at most one commission may
// reference an equipment. Runs on the transaction when one is in flight so
// the check and the insert see the same snapshot.
func (r *CommissionRepository) FindByEquipment(ctx context.Context, tx pgx.Tx, equipmentID uint64) (*entities.Commission, error) {
	var q querier = r.storage
	if tx != nil {
		q = tx
	}
	return scanCommission(q.QueryRow(ctx,
		`SELECT `+commissionColumns+` FROM comisiones WHERE equipo_id = $1`, equipmentID))
}

func (r *CommissionRepository) CreateCommission(ctx context.Context, tx pgx.Tx, c entities.Commission) (uint64, error) {
	var q querier = r.storage
	if tx != nil {
		q = tx
	}
	query := `
		INSERT INTO comisiones (usuario_id, venta_id, mantenimiento_id, equipo_id, monto, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id
	`
	var newID uint64
	err := q.QueryRow(ctx, query,
		c.UsuarioID, c.VentaID, c.MantenimientoID, c.EquipoID, c.Monto,
	).Scan(&newID)
	return newID, err
}

func (r *CommissionRepository) GetWeeklyByUser(ctx context.Context, userID uint64, from, to time.Time) ([]entities.Commission, decimal.Decimal, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT `+commissionColumns+`
		 FROM comisiones
		 WHERE usuario_id = $1 AND fecha_creacion >= $2 AND fecha_creacion < $3
		 ORDER BY fecha_creacion DESC`,
		userID, from, to)
	if err != nil {
		return nil, decimal.Zero, err
	}
	defer rows.Close()

	commissions := []entities.Commission{}
	total := decimal.Zero
	for rows.Next() {
		c, err := scanCommission(rows)
		if err != nil {
			return nil, decimal.Zero, err
		}
		commissions = append(commissions, *c)
		total = total.Add(c.Monto)
	}
	return commissions, total, rows.Err()
}

func (r *CommissionRepository) GetCommissions(ctx context.Context, limit, offset uint64) ([]entities.Commission, uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(id) FROM comisiones`).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Commission{}, 0, nil
	}

	query := `SELECT ` + commissionColumns + ` FROM comisiones ORDER BY id DESC`
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

	commissions := make([]entities.Commission, 0, limit)
	for rows.Next() {
		c, err := scanCommission(rows)
		if err != nil {
			return nil, 0, err
		}
		commissions = append(commissions, *c)
	}
	return commissions, total, rows.Err()
}
