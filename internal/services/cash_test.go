package services

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taller-system/internal/dto"
	"taller-system/internal/entities"
	apperrors "taller-system/pkg/errors"
)

type fakeCashRepository struct {
	movements []entities.CashMovement
	cuts      []entities.CashCut
}

func (f *fakeCashRepository) CreateMovement(ctx context.Context, m entities.CashMovement) (uint64, error) {
	m.ID = uint64(len(f.movements) + 1)
	f.movements = append(f.movements, m)
	return m.ID, nil
}

func (f *fakeCashRepository) GetOpenSummary(ctx context.Context, tx pgx.Tx, branchID uint64) (*entities.CashSummary, error) {
	s := &entities.CashSummary{
		TotalVentas:   decimal.Zero,
		TotalGastos:   decimal.Zero,
		TotalIngresos: decimal.Zero,
	}
	for _, m := range f.movements {
		if m.CorteID.Valid || m.SucursalID != branchID {
			continue
		}
		switch m.Tipo {
		case entities.CashMovementSale:
			s.TotalVentas = s.TotalVentas.Add(m.Monto)
		case entities.CashMovementExpense:
			s.TotalGastos = s.TotalGastos.Add(m.Monto)
		case entities.CashMovementIncome:
			s.TotalIngresos = s.TotalIngresos.Add(m.Monto)
		}
	}
	return s, nil
}

func (f *fakeCashRepository) GetOpenMovements(ctx context.Context, branchID uint64) ([]entities.CashMovement, error) {
	open := []entities.CashMovement{}
	for _, m := range f.movements {
		if !m.CorteID.Valid && m.SucursalID == branchID {
			open = append(open, m)
		}
	}
	return open, nil
}

func (f *fakeCashRepository) CreateCut(ctx context.Context, tx pgx.Tx, cut entities.CashCut) (uint64, error) {
	cut.ID = uint64(len(f.cuts) + 1)
	f.cuts = append(f.cuts, cut)
	return cut.ID, nil
}

func (f *fakeCashRepository) StampMovements(ctx context.Context, tx pgx.Tx, cutID, branchID uint64) error {
	for i := range f.movements {
		if !f.movements[i].CorteID.Valid && f.movements[i].SucursalID == branchID {
			f.movements[i].CorteID.SetValid(cutID)
		}
	}
	return nil
}

func (f *fakeCashRepository) GetCuts(ctx context.Context, branchID uint64, limit, offset uint64) ([]entities.CashCut, uint64, error) {
	return f.cuts, uint64(len(f.cuts)), nil
}

func newCashService() (*CashService, *fakeCashRepository) {
	repo := &fakeCashRepository{}
	return NewCashService(repo, &fakeTxManager{}, zap.NewNop()), repo
}

func TestCreateMovementRejectsNonPositiveAmount(t *testing.T) {
	svc, _ := newCashService()

	_, err := svc.CreateMovement(sessionContext(3, 1), dto.CreateCashMovementDTO{
		Tipo:  entities.CashMovementSale,
		Monto: decimal.Zero,
	})

	var httpErr *apperrors.HttpError
	assert.ErrorAs(t, err, &httpErr)
}

func TestCreateMovementStampsSessionIdentity(t *testing.T) {
	svc, repo := newCashService()

	result, err := svc.CreateMovement(sessionContext(3, 2), dto.CreateCashMovementDTO{
		Tipo:        entities.CashMovementExpense,
		Monto:       decimal.NewFromInt(150),
		Descripcion: "cables",
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(3), result.UsuarioID)
	assert.Equal(t, uint64(2), result.SucursalID)
	require.Len(t, repo.movements, 1)
}

func TestCreateCutSnapshotsAndStamps(t *testing.T) {
	svc, repo := newCashService()
	ctx := sessionContext(3, 1)

	mustMovement := func(tipo string, monto int64) {
		_, err := svc.CreateMovement(ctx, dto.CreateCashMovementDTO{
			Tipo:  tipo,
			Monto: decimal.NewFromInt(monto),
		})
		require.NoError(t, err)
	}
	mustMovement(entities.CashMovementSale, 1200)
	mustMovement(entities.CashMovementSale, 800)
	mustMovement(entities.CashMovementExpense, 300)
	mustMovement(entities.CashMovementIncome, 50)

	cut, err := svc.CreateCut(ctx)
	require.NoError(t, err)

	assert.True(t, cut.TotalVentas.Equal(decimal.NewFromInt(2000)))
	assert.True(t, cut.TotalGastos.Equal(decimal.NewFromInt(300)))
	assert.True(t, cut.TotalIngresos.Equal(decimal.NewFromInt(50)))
	assert.NotEmpty(t, cut.Folio)

	// Every open movement of the branch is now closed, stamped with the cut.
	require.Len(t, repo.movements, 4)
	for _, m := range repo.movements {
		require.True(t, m.CorteID.Valid)
		assert.Equal(t, cut.ID, m.CorteID.Uint64)
	}
	open, err := svc.GetOpenMovements(ctx)
	require.NoError(t, err)
	assert.Empty(t, open)

	// A second cut opens from zero.
	summary, err := svc.GetSummary(ctx)
	require.NoError(t, err)
	assert.True(t, summary.TotalVentas.IsZero())
}

func TestCreateCutLeavesOtherBranchesOpen(t *testing.T) {
	svc, _ := newCashService()

	_, err := svc.CreateMovement(sessionContext(3, 1), dto.CreateCashMovementDTO{
		Tipo:  entities.CashMovementSale,
		Monto: decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	_, err = svc.CreateMovement(sessionContext(4, 2), dto.CreateCashMovementDTO{
		Tipo:  entities.CashMovementSale,
		Monto: decimal.NewFromInt(900),
	})
	require.NoError(t, err)

	_, err = svc.CreateCut(sessionContext(3, 1))
	require.NoError(t, err)

	open, err := svc.GetOpenMovements(sessionContext(4, 2))
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.True(t, open[0].Monto.Equal(decimal.NewFromInt(900)))
}
