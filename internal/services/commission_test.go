package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taller-system/internal/dto"
	"taller-system/internal/entities"
)

func TestWeekRangeMidweek(t *testing.T) {
	// Wednesday 2025-08-20.
	ref := time.Date(2025, 8, 20, 15, 30, 0, 0, time.UTC)

	from, to := weekRange(ref)

	assert.Equal(t, time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC), to)
}

func TestWeekRangeOnMonday(t *testing.T) {
	ref := time.Date(2025, 8, 18, 0, 0, 1, 0, time.UTC)

	from, to := weekRange(ref)

	assert.Equal(t, time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC), to)
}

func TestWeekRangeOnSunday(t *testing.T) {
	// Sunday belongs to the week opened the previous Monday.
	ref := time.Date(2025, 8, 24, 23, 59, 59, 0, time.UTC)

	from, to := weekRange(ref)

	assert.Equal(t, time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC), to)
}

func TestWeekRangeCrossesMonthBoundary(t *testing.T) {
	// Tuesday 2025-09-02; the week opened Monday 2025-09-01.
	ref := time.Date(2025, 9, 2, 10, 0, 0, 0, time.UTC)

	from, to := weekRange(ref)

	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC), to)
}

func TestCreateCommissionIsIdempotentPerEquipment(t *testing.T) {
	repo := &fakeCommissionRepository{byEquipment: map[uint64]*entities.Commission{
		5: {ID: 50, UsuarioID: 9, EquipoID: null.Uint64From(5), Monto: decimal.NewFromInt(20)},
	}}
	svc := NewCommissionService(repo, zap.NewNop())

	result, err := svc.CreateCommission(context.Background(), dto.CreateCommissionDTO{
		UsuarioID: 7,
		EquipoID:  null.Uint64From(5),
		Monto:     decimal.NewFromInt(35),
	})

	require.NoError(t, err)
	// The equipment already paid out; the existing record comes back untouched.
	assert.Equal(t, uint64(50), result.ID)
	assert.Equal(t, uint64(9), result.UsuarioID)
	assert.True(t, result.Monto.Equal(decimal.NewFromInt(20)))
	assert.Empty(t, repo.created)
}

func TestCreateCommissionWithoutEquipmentInserts(t *testing.T) {
	repo := &fakeCommissionRepository{byEquipment: map[uint64]*entities.Commission{}}
	svc := NewCommissionService(repo, zap.NewNop())

	result, err := svc.CreateCommission(context.Background(), dto.CreateCommissionDTO{
		UsuarioID:       7,
		MantenimientoID: null.Uint64From(12),
		Monto:           decimal.NewFromInt(15),
	})

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, uint64(7), result.UsuarioID)
	assert.True(t, result.Monto.Equal(decimal.NewFromInt(15)))
}
