package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"taller-system/internal/entities"
	apperrors "taller-system/pkg/errors"
)

type InventoryRepositoryInterface interface {
	AvailableStock(ctx context.Context, ref entities.ComponentRef, branchID uint64) (int, error)
	DeductStock(ctx context.Context, tx pgx.Tx, ref entities.ComponentRef, cantidad int, branchID uint64) error
	AddItem(ctx context.Context, tx pgx.Tx, item entities.InventoryItem) (uint64, error)
	RegisterEquipment(ctx context.Context, tx pgx.Tx, equipmentID, branchID uint64, precio decimal.Decimal) (uint64, error)
	GetItems(ctx context.Context, tipo string, limit, offset uint64) ([]entities.InventoryItem, uint64, error)
	FindItem(ctx context.Context, id uint64) (*entities.InventoryItem, error)
	UpdateItem(ctx context.Context, id uint64, item entities.InventoryItem) error
	DeleteItem(ctx context.Context, id uint64) error
}

type InventoryRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewInventoryRepository(storage *pgxpool.Pool, logger *zap.Logger) InventoryRepositoryInterface {
	return &InventoryRepository{storage: storage, logger: logger}
}

func componentWhere(ref entities.ComponentRef) (string, any, error) {
	switch {
	case ref.MemoriaRAMID != nil:
		return "memoria_ram_id", *ref.MemoriaRAMID, nil
	case ref.AlmacenamientoID != nil:
		return "almacenamiento_id", *ref.AlmacenamientoID, nil
	default:
		return "", nil, apperrors.NewBadRequestError("a component reference needs memoria_ram_id or almacenamiento_id")
	}
}

// AvailableStock sums the branch-level quantity for one catalog item.
func (r *InventoryRepository) AvailableStock(ctx context.Context, ref entities.ComponentRef, branchID uint64) (int, error) {
	column, id, err := componentWhere(ref)
	if err != nil {
		return 0, err
	}

	var total int
	query := fmt.Sprintf(
		`SELECT COALESCE(SUM(cantidad), 0) FROM inventario WHERE %s = $1 AND sucursal_id = $2`, column)
	if err := r.storage.QueryRow(ctx, query, id, branchID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// DeductStock consumes cantidad units of one catalog item from the branch.
// Rows are locked FOR UPDATE so two technicians claiming the same stock
// serialize here; running short after the lock rolls the caller's
// transaction back.
func (r *InventoryRepository) DeductStock(ctx context.Context, tx pgx.Tx, ref entities.ComponentRef, cantidad int, branchID uint64) error {
	column, id, err := componentWhere(ref)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(
		`SELECT id, cantidad FROM inventario
		 WHERE %s = $1 AND sucursal_id = $2 AND cantidad > 0
		 ORDER BY id FOR UPDATE`, column)
	rows, err := tx.Query(ctx, query, id, branchID)
	if err != nil {
		return err
	}

	type stockRow struct {
		id       uint64
		cantidad int
	}
	var locked []stockRow
	for rows.Next() {
		var sr stockRow
		if err := rows.Scan(&sr.id, &sr.cantidad); err != nil {
			rows.Close()
			return err
		}
		locked = append(locked, sr)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	remaining := cantidad
	for _, sr := range locked {
		if remaining == 0 {
			break
		}
		take := sr.cantidad
		if take > remaining {
			take = remaining
		}
		if _, err := tx.Exec(ctx,
			`UPDATE inventario SET cantidad = cantidad - $1 WHERE id = $2`, take, sr.id); err != nil {
			return err
		}
		remaining -= take
	}
	if remaining > 0 {
		return apperrors.ErrInsufficientStock
	}
	return nil
}

func (r *InventoryRepository) AddItem(ctx context.Context, tx pgx.Tx, item entities.InventoryItem) (uint64, error) {
	query := `
		INSERT INTO inventario (tipo, especificacion, cantidad, estado, precio,
		                        memoria_ram_id, almacenamiento_id, equipo_id, sucursal_id, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id
	`
	var newID uint64
	err := tx.QueryRow(ctx, query,
		item.Tipo, item.Especificacion, item.Cantidad, item.Estado, item.Precio,
		item.MemoriaRAMID, item.AlmacenamientoID, item.EquipoID, item.SucursalID,
	).Scan(&newID)
	return newID, err
}

// RegisterEquipment puts an assembled equipment into sellable stock. The
// price is a placeholder until sales assigns one.
func (r *InventoryRepository) RegisterEquipment(ctx context.Context, tx pgx.Tx, equipmentID, branchID uint64, precio decimal.Decimal) (uint64, error) {
	query := `
		INSERT INTO inventario (tipo, especificacion, cantidad, estado, precio, equipo_id, sucursal_id, fecha_creacion)
		VALUES ('equipo', '', 1, 'disponible', $1, $2, $3, NOW())
		RETURNING id
	`
	var newID uint64
	err := tx.QueryRow(ctx, query, precio, equipmentID, branchID).Scan(&newID)
	return newID, err
}

func (r *InventoryRepository) GetItems(ctx context.Context, tipo string, limit, offset uint64) ([]entities.InventoryItem, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applyTipo := func(b sq.SelectBuilder) sq.SelectBuilder {
		if tipo != "" {
			return b.Where(sq.Eq{"tipo": tipo})
		}
		return b
	}

	var total uint64
	sqlCount, argsCount, _ := applyTipo(psql.Select("COUNT(id)").From("inventario")).ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.InventoryItem{}, 0, nil
	}

	builder := applyTipo(psql.Select(
		"id", "tipo", "especificacion", "cantidad", "estado", "precio",
		"memoria_ram_id", "almacenamiento_id", "equipo_id", "sucursal_id", "fecha_creacion",
	).From("inventario")).OrderBy("id DESC")
	if limit > 0 {
		builder = builder.Limit(limit).Offset(offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]entities.InventoryItem, 0, limit)
	for rows.Next() {
		var it entities.InventoryItem
		if err := rows.Scan(&it.ID, &it.Tipo, &it.Especificacion, &it.Cantidad, &it.Estado, &it.Precio,
			&it.MemoriaRAMID, &it.AlmacenamientoID, &it.EquipoID, &it.SucursalID, &it.FechaCreacion); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	return items, total, rows.Err()
}

func (r *InventoryRepository) UpdateItem(ctx context.Context, id uint64, item entities.InventoryItem) error {
	query := `
		UPDATE inventario
		SET especificacion = $1, cantidad = $2, estado = $3, precio = $4
		WHERE id = $5
	`
	result, err := r.storage.Exec(ctx, query,
		item.Especificacion, item.Cantidad, item.Estado, item.Precio, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *InventoryRepository) DeleteItem(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM inventario WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindItem is used by the admin edit dialog to load one record.
func (r *InventoryRepository) FindItem(ctx context.Context, id uint64) (*entities.InventoryItem, error) {
	var it entities.InventoryItem
	err := r.storage.QueryRow(ctx,
		`SELECT id, tipo, especificacion, cantidad, estado, precio,
		        memoria_ram_id, almacenamiento_id, equipo_id, sucursal_id, fecha_creacion
		 FROM inventario WHERE id = $1`, id).
		Scan(&it.ID, &it.Tipo, &it.Especificacion, &it.Cantidad, &it.Estado, &it.Precio,
			&it.MemoriaRAMID, &it.AlmacenamientoID, &it.EquipoID, &it.SucursalID, &it.FechaCreacion)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}
