package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"taller-system/internal/entities"
	apperrors "taller-system/pkg/errors"
)

type EquipmentRepositoryInterface interface {
	FindByID(ctx context.Context, id uint64) (*entities.Equipment, error)
	FindByLabelText(ctx context.Context, texto string) (*entities.Equipment, error)
	GetEquipments(ctx context.Context, limit, offset uint64) ([]entities.Equipment, uint64, error)
	GetEquipmentsByState(ctx context.Context, stateID uint64) ([]entities.Equipment, error)
	CreateEquipment(ctx context.Context, tx pgx.Tx, e entities.Equipment) (uint64, error)
	UpdateEquipment(ctx context.Context, tx pgx.Tx, id uint64, e entities.Equipment) error
	ReplaceComponents(ctx context.Context, tx pgx.Tx, equipmentID uint64, rams []entities.RAMAssignment, storages []entities.StorageAssignment) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

const equipmentSelect = `
	SELECT e.id, e.nombre, e.descripcion, e.procesador, e.tipo,
	       e.lote_etiqueta_id, le.lote_id, e.estado_id, e.cantidad,
	       e.sucursal_id, e.tecnico_id, e.fecha_creacion, e.fecha_actualizacion,
	       ce.id, ce.nombre, ce.es_terminal
	FROM equipos e
	JOIN lote_etiquetas le ON le.id = e.lote_etiqueta_id
	JOIN catalogo_estados ce ON ce.id = e.estado_id
`

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	var s entities.EquipmentState
	err := row.Scan(
		&e.ID, &e.Nombre, &e.Descripcion, &e.Procesador, &e.Tipo,
		&e.LoteEtiquetaID, &e.LoteID, &e.EstadoID, &e.Cantidad,
		&e.SucursalID, &e.TecnicoID, &e.FechaCreacion, &e.FechaActualizacion,
		&s.ID, &s.Nombre, &s.EsTerminal,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning equipment: %w", err)
	}
	e.Estado = &s
	return &e, nil
}

func (r *EquipmentRepository) loadComponents(ctx context.Context, e *entities.Equipment) error {
	ramRows, err := r.storage.Query(ctx,
		`SELECT memoria_ram_id, cantidad, slot FROM equipo_ram WHERE equipo_id = $1 ORDER BY id`, e.ID)
	if err != nil {
		return err
	}
	defer ramRows.Close()
	for ramRows.Next() {
		var a entities.RAMAssignment
		if err := ramRows.Scan(&a.MemoriaRAMID, &a.Cantidad, &a.Slot); err != nil {
			return err
		}
		e.RAMModules = append(e.RAMModules, a)
	}
	if err := ramRows.Err(); err != nil {
		return err
	}

	stoRows, err := r.storage.Query(ctx,
		`SELECT almacenamiento_id, rol, capacidad_override, orden, cantidad
		 FROM equipo_almacenamiento WHERE equipo_id = $1 ORDER BY id`, e.ID)
	if err != nil {
		return err
	}
	defer stoRows.Close()
	for stoRows.Next() {
		var a entities.StorageAssignment
		if err := stoRows.Scan(&a.AlmacenamientoID, &a.Rol, &a.CapacidadOverride, &a.Orden, &a.Cantidad); err != nil {
			return err
		}
		e.Storages = append(e.Storages, a)
	}
	return stoRows.Err()
}

func (r *EquipmentRepository) FindByID(ctx context.Context, id uint64) (*entities.Equipment, error) {
	e, err := scanEquipment(r.storage.QueryRow(ctx, equipmentSelect+` WHERE e.id = $1`, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadComponents(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// FindByLabelText resolves an equipment by its serial label, the lookup the
// technician form runs on label selection. Not-found is the "create new"
// signal, so callers treat ErrNotFound as a normal outcome.
func (r *EquipmentRepository) FindByLabelText(ctx context.Context, texto string) (*entities.Equipment, error) {
	e, err := scanEquipment(r.storage.QueryRow(ctx, equipmentSelect+` WHERE le.etiqueta = $1`, texto))
	if err != nil {
		return nil, err
	}
	if err := r.loadComponents(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, limit, offset uint64) ([]entities.Equipment, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	var total uint64
	sqlCount, argsCount, _ := psql.Select("COUNT(id)").From("equipos").ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Equipment{}, 0, nil
	}

	query := equipmentSelect + ` ORDER BY e.id DESC`
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

	equipments := make([]entities.Equipment, 0, limit)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		equipments = append(equipments, *e)
	}
	return equipments, total, rows.Err()
}

func (r *EquipmentRepository) GetEquipmentsByState(ctx context.Context, stateID uint64) ([]entities.Equipment, error) {
	rows, err := r.storage.Query(ctx, equipmentSelect+` WHERE e.estado_id = $1 ORDER BY e.id DESC`, stateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	equipments := []entities.Equipment{}
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		equipments = append(equipments, *e)
	}
	return equipments, rows.Err()
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, tx pgx.Tx, e entities.Equipment) (uint64, error) {
	query := `
		INSERT INTO equipos (nombre, descripcion, procesador, tipo, lote_etiqueta_id,
		                     estado_id, cantidad, sucursal_id, tecnico_id,
		                     fecha_creacion, fecha_actualizacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := tx.QueryRow(ctx, query,
		e.Nombre, e.Descripcion, e.Procesador, e.Tipo, e.LoteEtiquetaID,
		e.EstadoID, e.Cantidad, e.SucursalID, e.TecnicoID,
	).Scan(&newID)
	return newID, err
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, tx pgx.Tx, id uint64, e entities.Equipment) error {
	query := `
		UPDATE equipos
		SET nombre = $1, descripcion = $2, procesador = $3, tipo = $4,
		    estado_id = $5, cantidad = $6, sucursal_id = $7, tecnico_id = $8,
		    fecha_actualizacion = NOW()
		WHERE id = $9
	`
	result, err := tx.Exec(ctx, query,
		e.Nombre, e.Descripcion, e.Procesador, e.Tipo,
		e.EstadoID, e.Cantidad, e.SucursalID, e.TecnicoID, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ReplaceComponents rewrites the component assignment rows wholesale; the
// editor always submits the full lists.
func (r *EquipmentRepository) ReplaceComponents(ctx context.Context, tx pgx.Tx, equipmentID uint64, rams []entities.RAMAssignment, storages []entities.StorageAssignment) error {
	if _, err := tx.Exec(ctx, `DELETE FROM equipo_ram WHERE equipo_id = $1`, equipmentID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM equipo_almacenamiento WHERE equipo_id = $1`, equipmentID); err != nil {
		return err
	}

	for _, a := range rams {
		_, err := tx.Exec(ctx,
			`INSERT INTO equipo_ram (equipo_id, memoria_ram_id, cantidad, slot) VALUES ($1, $2, $3, $4)`,
			equipmentID, a.MemoriaRAMID, a.Cantidad, a.Slot,
		)
		if err != nil {
			return err
		}
	}
	for _, a := range storages {
		_, err := tx.Exec(ctx,
			`INSERT INTO equipo_almacenamiento (equipo_id, almacenamiento_id, rol, capacidad_override, orden, cantidad)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			equipmentID, a.AlmacenamientoID, a.Rol, a.CapacidadOverride, a.Orden, a.Cantidad,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
