package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"taller-system/internal/entities"
)

type CashRepositoryInterface interface {
	CreateMovement(ctx context.Context, m entities.CashMovement) (uint64, error)
	GetOpenSummary(ctx context.Context, tx pgx.Tx, branchID uint64) (*entities.CashSummary, error)
	GetOpenMovements(ctx context.Context, branchID uint64) ([]entities.CashMovement, error)
	CreateCut(ctx context.Context, tx pgx.Tx, cut entities.CashCut) (uint64, error)
	StampMovements(ctx context.Context, tx pgx.Tx, cutID, branchID uint64) error
	GetCuts(ctx context.Context, branchID uint64, limit, offset uint64) ([]entities.CashCut, uint64, error)
}

type CashRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCashRepository(storage *pgxpool.Pool, logger *zap.Logger) CashRepositoryInterface {
	return &CashRepository{storage: storage, logger: logger}
}

func (r *CashRepository) CreateMovement(ctx context.Context, m entities.CashMovement) (uint64, error) {
	query := `
		INSERT INTO caja_movimientos (tipo, monto, descripcion, usuario_id, sucursal_id, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id
	`
	var newID uint64
	err := r.storage.QueryRow(ctx, query,
		m.Tipo, m.Monto, m.Descripcion, m.UsuarioID, m.SucursalID,
	).Scan(&newID)
	return newID, err
}

// GetOpenSummary totals the movements not yet swept into a cut. Runs on the
// transaction during a cut so the totals and the stamped rows agree.
func (r *CashRepository) GetOpenSummary(ctx context.Context, tx pgx.Tx, branchID uint64) (*entities.CashSummary, error) {
	var q querier = r.storage
	if tx != nil {
		q = tx
	}
	var s entities.CashSummary
	err := q.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(monto) FILTER (WHERE tipo = 'venta'), 0),
			COALESCE(SUM(monto) FILTER (WHERE tipo = 'gasto'), 0),
			COALESCE(SUM(monto) FILTER (WHERE tipo = 'ingreso'), 0)
		FROM caja_movimientos
		WHERE corte_id IS NULL AND sucursal_id = $1
	`, branchID).Scan(&s.TotalVentas, &s.TotalGastos, &s.TotalIngresos)
	if err != nil {
		return nil, fmt.Errorf("summing open movements: %w", err)
	}
	return &s, nil
}

func (r *CashRepository) GetOpenMovements(ctx context.Context, branchID uint64) ([]entities.CashMovement, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT id, tipo, monto, descripcion, usuario_id, sucursal_id, corte_id, fecha_creacion
		FROM caja_movimientos
		WHERE corte_id IS NULL AND sucursal_id = $1
		ORDER BY fecha_creacion DESC
	`, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := []entities.CashMovement{}
	for rows.Next() {
		var m entities.CashMovement
		if err := rows.Scan(&m.ID, &m.Tipo, &m.Monto, &m.Descripcion,
			&m.UsuarioID, &m.SucursalID, &m.CorteID, &m.FechaCreacion); err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

func (r *CashRepository) CreateCut(ctx context.Context, tx pgx.Tx, cut entities.CashCut) (uint64, error) {
	query := `
		INSERT INTO caja_cortes (folio, total_ventas, total_gastos, total_ingresos,
		                         usuario_id, sucursal_id, fecha_corte)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id
	`
	var newID uint64
	err := tx.QueryRow(ctx, query,
		cut.Folio, cut.TotalVentas, cut.TotalGastos, cut.TotalIngresos,
		cut.UsuarioID, cut.SucursalID,
	).Scan(&newID)
	return newID, err
}

// StampMovements closes the open movements by pointing them at the cut.
func (r *CashRepository) StampMovements(ctx context.Context, tx pgx.Tx, cutID, branchID uint64) error {
	_, err := tx.Exec(ctx,
		`UPDATE caja_movimientos SET corte_id = $1 WHERE corte_id IS NULL AND sucursal_id = $2`,
		cutID, branchID)
	return err
}

func (r *CashRepository) GetCuts(ctx context.Context, branchID uint64, limit, offset uint64) ([]entities.CashCut, uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx,
		`SELECT COUNT(id) FROM caja_cortes WHERE sucursal_id = $1`, branchID).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.CashCut{}, 0, nil
	}

	query := `
		SELECT id, folio, total_ventas, total_gastos, total_ingresos, usuario_id, sucursal_id, fecha_corte
		FROM caja_cortes
		WHERE sucursal_id = $1
		ORDER BY fecha_corte DESC
	`
	args := []any{branchID}
	if limit > 0 {
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	cuts := make([]entities.CashCut, 0, limit)
	for rows.Next() {
		var c entities.CashCut
		if err := rows.Scan(&c.ID, &c.Folio, &c.TotalVentas, &c.TotalGastos, &c.TotalIngresos,
			&c.UsuarioID, &c.SucursalID, &c.FechaCorte); err != nil {
			return nil, 0, err
		}
		cuts = append(cuts, c)
	}
	return cuts, total, rows.Err()
}
