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

type LotRepositoryInterface interface {
	CreateLot(ctx context.Context, tx pgx.Tx, lot entities.Lot) (uint64, error)
	CreateLabels(ctx context.Context, tx pgx.Tx, lotID uint64, labels []string) error
	GetLots(ctx context.Context, limit, offset uint64) ([]entities.Lot, uint64, error)
	FindLot(ctx context.Context, id uint64) (*entities.Lot, error)
	FindLotByEtiqueta(ctx context.Context, etiqueta string) (*entities.Lot, error)
	GetLabels(ctx context.Context, lotID uint64) ([]entities.SerialLabel, error)
	FindLabelByID(ctx context.Context, id uint64) (*entities.SerialLabel, error)
}

type LotRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewLotRepository(storage *pgxpool.Pool, logger *zap.Logger) LotRepositoryInterface {
	return &LotRepository{storage: storage, logger: logger}
}

func (r *LotRepository) CreateLot(ctx context.Context, tx pgx.Tx, lot entities.Lot) (uint64, error) {
	query := `
		INSERT INTO lotes (etiqueta, fecha_recibo, total_equipos, usuario_recibio, fecha_creacion)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`
	var newID uint64
	err := tx.QueryRow(ctx, query,
		lot.Etiqueta, lot.FechaRecibo, lot.TotalEquipos, lot.UsuarioRecibo,
	).Scan(&newID)
	return newID, err
}

func (r *LotRepository) CreateLabels(ctx context.Context, tx pgx.Tx, lotID uint64, labels []string) error {
	for _, etiqueta := range labels {
		_, err := tx.Exec(ctx,
			`INSERT INTO lote_etiquetas (lote_id, etiqueta) VALUES ($1, $2)`,
			lotID, etiqueta,
		)
		if err != nil {
			return fmt.Errorf("inserting label %q: %w", etiqueta, err)
		}
	}
	return nil
}

func (r *LotRepository) GetLots(ctx context.Context, limit, offset uint64) ([]entities.Lot, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	var total uint64
	sqlCount, argsCount, _ := psql.Select("COUNT(id)").From("lotes").ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Lot{}, 0, nil
	}

	builder := psql.Select(
		"id", "etiqueta", "fecha_recibo", "total_equipos", "usuario_recibio", "fecha_creacion",
	).From("lotes").OrderBy("id DESC")
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

	lots := make([]entities.Lot, 0, limit)
	for rows.Next() {
		var l entities.Lot
		if err := rows.Scan(&l.ID, &l.Etiqueta, &l.FechaRecibo, &l.TotalEquipos, &l.UsuarioRecibo, &l.FechaCreacion); err != nil {
			return nil, 0, err
		}
		lots = append(lots, l)
	}
	return lots, total, rows.Err()
}

func (r *LotRepository) findOne(ctx context.Context, where sq.Eq) (*entities.Lot, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select(
		"id", "etiqueta", "fecha_recibo", "total_equipos", "usuario_recibio", "fecha_creacion",
	).From("lotes").Where(where).ToSql()
	if err != nil {
		return nil, err
	}

	var l entities.Lot
	err = r.storage.QueryRow(ctx, query, args...).
		Scan(&l.ID, &l.Etiqueta, &l.FechaRecibo, &l.TotalEquipos, &l.UsuarioRecibo, &l.FechaCreacion)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning lot: %w", err)
	}
	return &l, nil
}

func (r *LotRepository) FindLot(ctx context.Context, id uint64) (*entities.Lot, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *LotRepository) FindLotByEtiqueta(ctx context.Context, etiqueta string) (*entities.Lot, error) {
	return r.findOne(ctx, sq.Eq{"etiqueta": etiqueta})
}

// GetLabels returns the serial labels of a lot together with the linked
// equipment (if any) and its state, so the selector can show progress.
func (r *LotRepository) GetLabels(ctx context.Context, lotID uint64) ([]entities.SerialLabel, error) {
	query := `
		SELECT le.id, le.lote_id, le.etiqueta, e.id, e.estado_id, ce.nombre
		FROM lote_etiquetas le
		LEFT JOIN equipos e ON e.lote_etiqueta_id = le.id
		LEFT JOIN catalogo_estados ce ON ce.id = e.estado_id
		WHERE le.lote_id = $1
		ORDER BY le.id
	`
	rows, err := r.storage.Query(ctx, query, lotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	labels := []entities.SerialLabel{}
	for rows.Next() {
		var l entities.SerialLabel
		if err := rows.Scan(&l.ID, &l.LoteID, &l.Etiqueta, &l.EquipoID, &l.EstadoID, &l.EstadoNombre); err != nil {
			return nil, err
		}
		labels = append(labels, l)
	}
	return labels, rows.Err()
}

func (r *LotRepository) FindLabelByID(ctx context.Context, id uint64) (*entities.SerialLabel, error) {
	query := `
		SELECT le.id, le.lote_id, le.etiqueta, e.id, e.estado_id, ce.nombre
		FROM lote_etiquetas le
		LEFT JOIN equipos e ON e.lote_etiqueta_id = le.id
		LEFT JOIN catalogo_estados ce ON ce.id = e.estado_id
		WHERE le.id = $1
	`
	var l entities.SerialLabel
	err := r.storage.QueryRow(ctx, query, id).
		Scan(&l.ID, &l.LoteID, &l.Etiqueta, &l.EquipoID, &l.EstadoID, &l.EstadoNombre)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning label: %w", err)
	}
	return &l, nil
}
