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
	"taller-system/internal/repositories"
	"taller-system/pkg/contextkeys"
	apperrors "taller-system/pkg/errors"
)

type fakeTxManager struct{}

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeLotRepository struct {
	repositories.LotRepositoryInterface
	labels map[uint64]*entities.SerialLabel
}

func (f *fakeLotRepository) FindLabelByID(ctx context.Context, id uint64) (*entities.SerialLabel, error) {
	if l, ok := f.labels[id]; ok {
		return l, nil
	}
	return nil, apperrors.ErrNotFound
}

type fakeCatalogRepository struct {
	repositories.CatalogRepositoryInterface
	states map[uint64]*entities.EquipmentState
}

func (f *fakeCatalogRepository) FindState(ctx context.Context, id uint64) (*entities.EquipmentState, error) {
	if s, ok := f.states[id]; ok {
		return s, nil
	}
	return nil, apperrors.ErrNotFound
}

type fakeEquipmentRepository struct {
	repositories.EquipmentRepositoryInterface
	byID    map[uint64]*entities.Equipment
	nextID  uint64
	created []entities.Equipment
	updated []uint64
}

func (f *fakeEquipmentRepository) FindByID(ctx context.Context, id uint64) (*entities.Equipment, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeEquipmentRepository) CreateEquipment(ctx context.Context, tx pgx.Tx, e entities.Equipment) (uint64, error) {
	f.nextID++
	e.ID = f.nextID
	f.created = append(f.created, e)
	stored := e
	stored.Estado = &entities.EquipmentState{ID: e.EstadoID}
	f.byID[e.ID] = &stored
	return e.ID, nil
}

func (f *fakeEquipmentRepository) UpdateEquipment(ctx context.Context, tx pgx.Tx, id uint64, e entities.Equipment) error {
	f.updated = append(f.updated, id)
	e.ID = id
	stored := e
	stored.Estado = &entities.EquipmentState{ID: e.EstadoID}
	f.byID[id] = &stored
	return nil
}

func (f *fakeEquipmentRepository) ReplaceComponents(ctx context.Context, tx pgx.Tx, equipmentID uint64, rams []entities.RAMAssignment, storages []entities.StorageAssignment) error {
	if e, ok := f.byID[equipmentID]; ok {
		e.RAMModules = rams
		e.Storages = storages
	}
	return nil
}

type fakeInventoryRepository struct {
	repositories.InventoryRepositoryInterface
	stock      map[uint64]int // keyed by catalog id, shared for ram and storage in tests
	deductions []int
	added      []entities.InventoryItem
	registered []uint64
}

func (f *fakeInventoryRepository) stockKey(ref entities.ComponentRef) uint64 {
	if ref.MemoriaRAMID != nil {
		return *ref.MemoriaRAMID
	}
	return *ref.AlmacenamientoID
}

func (f *fakeInventoryRepository) AvailableStock(ctx context.Context, ref entities.ComponentRef, branchID uint64) (int, error) {
	return f.stock[f.stockKey(ref)], nil
}

func (f *fakeInventoryRepository) DeductStock(ctx context.Context, tx pgx.Tx, ref entities.ComponentRef, cantidad int, branchID uint64) error {
	key := f.stockKey(ref)
	if f.stock[key] < cantidad {
		return apperrors.ErrInsufficientStock
	}
	f.stock[key] -= cantidad
	f.deductions = append(f.deductions, cantidad)
	return nil
}

func (f *fakeInventoryRepository) AddItem(ctx context.Context, tx pgx.Tx, item entities.InventoryItem) (uint64, error) {
	f.added = append(f.added, item)
	return uint64(len(f.added)), nil
}

func (f *fakeInventoryRepository) RegisterEquipment(ctx context.Context, tx pgx.Tx, equipmentID, branchID uint64, precio decimal.Decimal) (uint64, error) {
	f.registered = append(f.registered, equipmentID)
	return 1, nil
}

type fakeCommissionRepository struct {
	repositories.CommissionRepositoryInterface
	byEquipment map[uint64]*entities.Commission
	created     []entities.Commission
}

func (f *fakeCommissionRepository) FindByEquipment(ctx context.Context, tx pgx.Tx, equipmentID uint64) (*entities.Commission, error) {
	if c, ok := f.byEquipment[equipmentID]; ok {
		return c, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeCommissionRepository) CreateCommission(ctx context.Context, tx pgx.Tx, c entities.Commission) (uint64, error) {
	f.created = append(f.created, c)
	if c.EquipoID.Valid {
		f.byEquipment[c.EquipoID.Uint64] = &c
	}
	return uint64(len(f.created)), nil
}

type fakeConfigurationRepository struct {
	values map[string]string
}

func (f *fakeConfigurationRepository) Find(ctx context.Context, clave string) (*entities.Configuration, error) {
	if v, ok := f.values[clave]; ok {
		return &entities.Configuration{Clave: clave, Valor: v}, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeConfigurationRepository) Upsert(ctx context.Context, clave, valor string) error {
	f.values[clave] = valor
	return nil
}

func (f *fakeConfigurationRepository) GetAll(ctx context.Context) ([]entities.Configuration, error) {
	return nil, nil
}

type intakeFixture struct {
	service    *IntakeService
	lots       *fakeLotRepository
	catalogs   *fakeCatalogRepository
	equipments *fakeEquipmentRepository
	inventory  *fakeInventoryRepository
	commission *fakeCommissionRepository
}

func newIntakeFixture(configValues map[string]string) *intakeFixture {
	logger := zap.NewNop()
	fx := &intakeFixture{
		lots: &fakeLotRepository{labels: map[uint64]*entities.SerialLabel{
			10: {ID: 10, LoteID: 1, Etiqueta: "170820251"},
		}},
		catalogs: &fakeCatalogRepository{states: map[uint64]*entities.EquipmentState{
			1: {ID: 1, Nombre: "En proceso", EsTerminal: false},
			4: {ID: 4, Nombre: "Armado", EsTerminal: true},
		}},
		equipments: &fakeEquipmentRepository{byID: map[uint64]*entities.Equipment{}},
		inventory:  &fakeInventoryRepository{stock: map[uint64]int{}},
		commission: &fakeCommissionRepository{byEquipment: map[uint64]*entities.Commission{}},
	}
	if configValues == nil {
		configValues = map[string]string{}
	}
	configuration := NewConfigurationService(&fakeConfigurationRepository{values: configValues}, nil, 0, logger)
	fx.service = NewIntakeService(
		fx.equipments, fx.lots, fx.catalogs, fx.inventory, fx.commission,
		configuration, &fakeTxManager{}, logger,
	)
	return fx
}

func sessionContext(userID, branchID uint64) context.Context {
	ctx := context.WithValue(context.Background(), contextkeys.UserIDKey, userID)
	ctx = context.WithValue(ctx, contextkeys.UserRoleKey, entities.RoleTechnician)
	return context.WithValue(ctx, contextkeys.BranchIDKey, branchID)
}

func TestSaveEquipmentTerminalRequiresComponents(t *testing.T) {
	fx := newIntakeFixture(nil)

	_, err := fx.service.SaveEquipment(sessionContext(7, 1), dto.SaveEquipmentDTO{
		Nombre:         "HP EliteDesk",
		Procesador:     "i5-8500",
		LoteEtiquetaID: 10,
		EstadoID:       4,
	})

	assert.ErrorIs(t, err, apperrors.ErrComponentsRequired)
}

func TestSaveEquipmentTerminalRequiresStorageToo(t *testing.T) {
	fx := newIntakeFixture(nil)
	fx.inventory.stock[3] = 4

	_, err := fx.service.SaveEquipment(sessionContext(7, 1), dto.SaveEquipmentDTO{
		Nombre:         "HP EliteDesk",
		Procesador:     "i5-8500",
		LoteEtiquetaID: 10,
		EstadoID:       4,
		RAMModules:     []dto.RAMModuleDTO{{MemoriaRAMID: 3, Cantidad: 1}},
	})

	assert.ErrorIs(t, err, apperrors.ErrComponentsRequired)
	assert.Empty(t, fx.equipments.created)
	assert.Empty(t, fx.commission.created)
}

func TestSaveEquipmentTerminalRequiresRAMToo(t *testing.T) {
	fx := newIntakeFixture(nil)
	fx.inventory.stock[9] = 4

	_, err := fx.service.SaveEquipment(sessionContext(7, 1), dto.SaveEquipmentDTO{
		Nombre:         "HP EliteDesk",
		Procesador:     "i5-8500",
		LoteEtiquetaID: 10,
		EstadoID:       4,
		Storages:       []dto.StorageDeviceDTO{{AlmacenamientoID: 9, Cantidad: 1}},
	})

	assert.ErrorIs(t, err, apperrors.ErrComponentsRequired)
	assert.Empty(t, fx.equipments.created)
	assert.Empty(t, fx.commission.created)
}

func TestSaveEquipmentTerminalInsufficientStock(t *testing.T) {
	fx := newIntakeFixture(nil)
	fx.inventory.stock[3] = 1
	fx.inventory.stock[9] = 1

	_, err := fx.service.SaveEquipment(sessionContext(7, 1), dto.SaveEquipmentDTO{
		Nombre:         "HP EliteDesk",
		Procesador:     "i5-8500",
		LoteEtiquetaID: 10,
		EstadoID:       4,
		RAMModules:     []dto.RAMModuleDTO{{MemoriaRAMID: 3, Cantidad: 2}},
		Storages:       []dto.StorageDeviceDTO{{AlmacenamientoID: 9, Cantidad: 1}},
	})

	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
	assert.Empty(t, fx.equipments.created)
}

func TestSaveEquipmentTerminalHappyPath(t *testing.T) {
	fx := newIntakeFixture(nil)
	fx.inventory.stock[3] = 4
	fx.inventory.stock[9] = 1

	result, err := fx.service.SaveEquipment(sessionContext(7, 1), dto.SaveEquipmentDTO{
		Nombre:         "HP EliteDesk",
		Procesador:     "i5-8500",
		LoteEtiquetaID: 10,
		EstadoID:       4,
		RAMModules: []dto.RAMModuleDTO{
			{MemoriaRAMID: 3, Cantidad: 1},
			{MemoriaRAMID: 3, Cantidad: 1},
		},
		Storages: []dto.StorageDeviceDTO{{AlmacenamientoID: 9, Cantidad: 1}},
	})

	require.NoError(t, err)
	require.NotNil(t, result)

	// Duplicate RAM slots tally into one deduction of 2.
	assert.Equal(t, 2, fx.inventory.stock[3])
	assert.Equal(t, 0, fx.inventory.stock[9])

	require.Len(t, fx.equipments.created, 1)
	assert.Equal(t, uint64(7), fx.equipments.created[0].TecnicoID)
	assert.Equal(t, uint64(1), fx.equipments.created[0].SucursalID)

	require.Len(t, fx.inventory.registered, 1)
	assert.Equal(t, result.ID, fx.inventory.registered[0])

	require.Len(t, fx.commission.created, 1)
	assert.Equal(t, uint64(7), fx.commission.created[0].UsuarioID)
	assert.True(t, fx.commission.created[0].Monto.Equal(decimal.NewFromInt(20)))
}

func TestSaveEquipmentCommissionUsesConfiguredAmount(t *testing.T) {
	fx := newIntakeFixture(map[string]string{ConfigKeyAssemblyCommission: "35"})
	fx.inventory.stock[3] = 2
	fx.inventory.stock[9] = 1

	_, err := fx.service.SaveEquipment(sessionContext(7, 1), dto.SaveEquipmentDTO{
		Nombre:         "Dell OptiPlex",
		Procesador:     "i3-9100",
		LoteEtiquetaID: 10,
		EstadoID:       4,
		RAMModules:     []dto.RAMModuleDTO{{MemoriaRAMID: 3, Cantidad: 1}},
		Storages:       []dto.StorageDeviceDTO{{AlmacenamientoID: 9, Cantidad: 1}},
	})

	require.NoError(t, err)
	require.Len(t, fx.commission.created, 1)
	assert.True(t, fx.commission.created[0].Monto.Equal(decimal.NewFromInt(35)))
}

func TestSaveEquipmentCommissionIsIdempotent(t *testing.T) {
	fx := newIntakeFixture(nil)
	fx.inventory.stock[3] = 10
	fx.inventory.stock[9] = 10

	equipoID := uint64(1)
	fx.commission.byEquipment[equipoID] = &entities.Commission{ID: 50, UsuarioID: 9}

	_, err := fx.service.SaveEquipment(sessionContext(7, 1), dto.SaveEquipmentDTO{
		Nombre:         "HP EliteDesk",
		Procesador:     "i5-8500",
		LoteEtiquetaID: 10,
		EstadoID:       4,
		RAMModules:     []dto.RAMModuleDTO{{MemoriaRAMID: 3, Cantidad: 1}},
		Storages:       []dto.StorageDeviceDTO{{AlmacenamientoID: 9, Cantidad: 1}},
	})

	require.NoError(t, err)
	assert.Empty(t, fx.commission.created)
}

func TestSaveEquipmentRejectsFinalizedEdit(t *testing.T) {
	fx := newIntakeFixture(nil)

	equipoID := uint64(77)
	fx.equipments.byID[equipoID] = &entities.Equipment{
		ID:     equipoID,
		Estado: &entities.EquipmentState{ID: 4, Nombre: "Armado", EsTerminal: true},
	}
	fx.lots.labels[10].EquipoID = &equipoID

	_, err := fx.service.SaveEquipment(sessionContext(7, 1), dto.SaveEquipmentDTO{
		Nombre:         "HP EliteDesk",
		Procesador:     "i5-8500",
		LoteEtiquetaID: 10,
		EstadoID:       1,
	})

	assert.ErrorIs(t, err, apperrors.ErrEquipmentFinalized)
	assert.Empty(t, fx.equipments.updated)
}

func TestSaveEquipmentNonTerminalAddsLooseComponents(t *testing.T) {
	fx := newIntakeFixture(nil)

	_, err := fx.service.SaveEquipment(sessionContext(7, 2), dto.SaveEquipmentDTO{
		Nombre:         "Lenovo M720",
		Procesador:     "i5-9400",
		LoteEtiquetaID: 10,
		EstadoID:       1,
		RAMModules:     []dto.RAMModuleDTO{{MemoriaRAMID: 3, Cantidad: 2}},
		Storages:       []dto.StorageDeviceDTO{{AlmacenamientoID: 9}},
	})

	require.NoError(t, err)
	require.Len(t, fx.inventory.added, 2)
	for _, item := range fx.inventory.added {
		assert.Equal(t, "usado", item.Estado)
		assert.Equal(t, uint64(2), item.SucursalID)
	}
	assert.Equal(t, "ram", fx.inventory.added[0].Tipo)
	assert.Equal(t, 2, fx.inventory.added[0].Cantidad)
	assert.Equal(t, "almacenamiento", fx.inventory.added[1].Tipo)
	// Storage quantity defaults to 1 when the form leaves it empty.
	assert.Equal(t, 1, fx.inventory.added[1].Cantidad)

	assert.Empty(t, fx.inventory.deductions)
	assert.Empty(t, fx.commission.created)
	assert.Empty(t, fx.inventory.registered)
}

func TestSaveEquipmentUnknownLabel(t *testing.T) {
	fx := newIntakeFixture(nil)

	_, err := fx.service.SaveEquipment(sessionContext(7, 1), dto.SaveEquipmentDTO{
		Nombre:         "HP EliteDesk",
		Procesador:     "i5-8500",
		LoteEtiquetaID: 999,
		EstadoID:       1,
	})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
