package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"taller-system/internal/entities"
)

type MaintenanceRepositoryInterface interface {
	CreateMaintenance(ctx context.Context, tx pgx.Tx, m entities.Maintenance) (uint64, error)
	GetMaintenances(ctx context.Context, limit, offset uint64) ([]entities.Maintenance, uint64, error)
}

type MaintenanceRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMaintenanceRepository(storage *pgxpool.Pool, logger *zap.Logger) MaintenanceRepositoryInterface {
	return &MaintenanceRepository{storage: storage, logger: logger}
}

func (r *MaintenanceRepository) CreateMaintenance(ctx context.Context, tx pgx.Tx, m entities.Maintenance) (uint64, error) {
	query := `
		INSERT INTO mantenimientos (equipo, detalle, fecha, tecnico_id, tipo_id,
		                            descripcion, costo, equipo_id, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id
	`
	var newID uint64
	err := tx.QueryRow(ctx, query,
		m.Equipo, m.Detalle, m.Fecha, m.TecnicoID, m.TipoID,
		m.Descripcion, m.Costo, m.EquipoID,
	).Scan(&newID)
	return newID, err
}

func (r *MaintenanceRepository) GetMaintenances(ctx context.Context, limit, offset uint64) ([]entities.Maintenance, uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(id) FROM mantenimientos`).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Maintenance{}, 0, nil
	}

	query := `
		SELECT id, equipo, detalle, fecha, tecnico_id, tipo_id, descripcion, costo, equipo_id, fecha_creacion
		FROM mantenimientos
		ORDER BY fecha DESC, id DESC
	`
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

	maintenances := make([]entities.Maintenance, 0, limit)
	for rows.Next() {
		var m entities.Maintenance
		if err := rows.Scan(&m.ID, &m.Equipo, &m.Detalle, &m.Fecha, &m.TecnicoID,
			&m.TipoID, &m.Descripcion, &m.Costo, &m.EquipoID, &m.FechaCreacion); err != nil {
			return nil, 0, err
		}
		maintenances = append(maintenances, m)
	}
	return maintenances, total, rows.Err()
}
