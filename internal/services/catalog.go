package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"taller-system/internal/dto"
	"taller-system/internal/entities"
	"taller-system/internal/repositories"
)

const (
	cacheKeyStates           = "catalog:estados"
	cacheKeyRAMTypes         = "catalog:memoria_ram"
	cacheKeyStorageTypes     = "catalog:almacenamiento"
	cacheKeyMaintenanceTypes = "catalog:mantenimiento"
)

// CatalogService serves the dropdown catalogs. Lists are cached in Redis
// because the intake form reloads them on every mount and they change only
// when an admin edits the database by hand.
type CatalogService struct {
	catalogRepository repositories.CatalogRepositoryInterface
	cache             repositories.CacheRepositoryInterface
	cacheTTL          time.Duration
	logger            *zap.Logger
}

func NewCatalogService(
	catalogRepository repositories.CatalogRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		catalogRepository: catalogRepository,
		cache:             cache,
		cacheTTL:          cacheTTL,
		logger:            logger,
	}
}

// cachedList tries the cache first and falls back to loader on any cache
// problem. A broken Redis never takes the catalogs down.
func cachedList[T any](ctx context.Context, s *CatalogService, key string, loader func(context.Context) ([]T, error)) ([]T, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key); err == nil {
			var cached []T
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
			s.logger.Warn("dropping unreadable cache entry", zap.String("key", key))
			_ = s.cache.Del(ctx, key)
		}
	}

	items, err := loader(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(items); err == nil {
			if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
				s.logger.Debug("cache set failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return items, nil
}

func (s *CatalogService) GetStates(ctx context.Context) ([]dto.EquipmentStateDTO, error) {
	states, err := cachedList(ctx, s, cacheKeyStates, s.catalogRepository.ListStates)
	if err != nil {
		return nil, err
	}
	result := make([]dto.EquipmentStateDTO, 0, len(states))
	for _, st := range states {
		result = append(result, dto.EquipmentStateDTO{ID: st.ID, Nombre: st.Nombre, EsTerminal: st.EsTerminal})
	}
	return result, nil
}

func (s *CatalogService) GetRAMTypes(ctx context.Context) ([]dto.ComponentTypeDTO, error) {
	types, err := cachedList(ctx, s, cacheKeyRAMTypes, s.catalogRepository.ListRAMTypes)
	if err != nil {
		return nil, err
	}
	return componentTypesToDTO(types, func(t entities.RAMType) (uint64, string) { return t.ID, t.Descripcion }), nil
}

func (s *CatalogService) GetStorageTypes(ctx context.Context) ([]dto.ComponentTypeDTO, error) {
	types, err := cachedList(ctx, s, cacheKeyStorageTypes, s.catalogRepository.ListStorageTypes)
	if err != nil {
		return nil, err
	}
	return componentTypesToDTO(types, func(t entities.StorageType) (uint64, string) { return t.ID, t.Descripcion }), nil
}

func (s *CatalogService) GetMaintenanceTypes(ctx context.Context) ([]dto.MaintenanceTypeDTO, error) {
	types, err := cachedList(ctx, s, cacheKeyMaintenanceTypes, s.catalogRepository.ListMaintenanceTypes)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MaintenanceTypeDTO, 0, len(types))
	for _, t := range types {
		result = append(result, dto.MaintenanceTypeDTO{ID: t.ID, Descripcion: t.Descripcion, Costo: t.Costo})
	}
	return result, nil
}

func componentTypesToDTO[T any](types []T, fields func(T) (uint64, string)) []dto.ComponentTypeDTO {
	result := make([]dto.ComponentTypeDTO, 0, len(types))
	for _, t := range types {
		id, descripcion := fields(t)
		result = append(result, dto.ComponentTypeDTO{ID: id, Descripcion: descripcion})
	}
	return result
}
