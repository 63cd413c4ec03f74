package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"taller-system/internal/dto"
	"taller-system/internal/repositories"
	apperrors "taller-system/pkg/errors"
)

// Known configuration keys and their fallbacks when the row is missing.
const (
	ConfigKeyAssemblyCommission    = "comision_armado"
	ConfigKeyMaintenanceCommission = "comision_mantenimiento"
)

var configDefaults = map[string]string{
	ConfigKeyAssemblyCommission:    "20",
	ConfigKeyMaintenanceCommission: "0.03",
}

const configCachePrefix = "config:"

type ConfigurationService struct {
	configurationRepository repositories.ConfigurationRepositoryInterface
	cache                   repositories.CacheRepositoryInterface
	cacheTTL                time.Duration
	logger                  *zap.Logger
}

func NewConfigurationService(
	configurationRepository repositories.ConfigurationRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *ConfigurationService {
	return &ConfigurationService{
		configurationRepository: configurationRepository,
		cache:                   cache,
		cacheTTL:                cacheTTL,
		logger:                  logger,
	}
}

// GetValue resolves a configuration value, falling back to the built-in
// default when the key has no row. Unknown keys without a row are an error.
func (s *ConfigurationService) GetValue(ctx context.Context, clave string) (string, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, configCachePrefix+clave); err == nil {
			return raw, nil
		}
	}

	cfg, err := s.configurationRepository.Find(ctx, clave)
	if errors.Is(err, apperrors.ErrNotFound) {
		if fallback, ok := configDefaults[clave]; ok {
			return fallback, nil
		}
		return "", err
	}
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, configCachePrefix+clave, cfg.Valor, s.cacheTTL); err != nil {
			s.logger.Debug("cache set failed", zap.String("clave", clave), zap.Error(err))
		}
	}
	return cfg.Valor, nil
}

// GetDecimal parses a configuration value as a decimal rate or amount. A
// malformed stored value falls back to the default so commissions keep
// flowing.
func (s *ConfigurationService) GetDecimal(ctx context.Context, clave string) (decimal.Decimal, error) {
	raw, err := s.GetValue(ctx, clave)
	if err != nil {
		return decimal.Zero, err
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		fallback, ok := configDefaults[clave]
		if !ok {
			return decimal.Zero, apperrors.NewBadRequestError("configuration value is not numeric: " + clave)
		}
		s.logger.Warn("configuration value is not numeric, using default",
			zap.String("clave", clave), zap.String("valor", raw))
		return decimal.NewFromString(fallback)
	}
	return value, nil
}

func (s *ConfigurationService) FindConfiguration(ctx context.Context, clave string) (*dto.ConfigurationDTO, error) {
	cfg, err := s.configurationRepository.Find(ctx, clave)
	if errors.Is(err, apperrors.ErrNotFound) {
		if fallback, ok := configDefaults[clave]; ok {
			return &dto.ConfigurationDTO{Clave: clave, Valor: fallback}, nil
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	return &dto.ConfigurationDTO{Clave: cfg.Clave, Valor: cfg.Valor, Descripcion: cfg.Descripcion}, nil
}

func (s *ConfigurationService) GetConfigurations(ctx context.Context) ([]dto.ConfigurationDTO, error) {
	configs, err := s.configurationRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ConfigurationDTO, 0, len(configs))
	for _, c := range configs {
		result = append(result, dto.ConfigurationDTO{Clave: c.Clave, Valor: c.Valor, Descripcion: c.Descripcion})
	}
	return result, nil
}

// UpdateConfiguration upserts the value and drops the cached copy so the next
// read sees the new rate.
func (s *ConfigurationService) UpdateConfiguration(ctx context.Context, clave string, payload dto.UpdateConfigurationDTO) (*dto.ConfigurationDTO, error) {
	if err := s.configurationRepository.Upsert(ctx, clave, payload.Valor); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, configCachePrefix+clave)
	}
	s.logger.Info("configuration updated", zap.String("clave", clave), zap.String("valor", payload.Valor))
	return &dto.ConfigurationDTO{Clave: clave, Valor: payload.Valor}, nil
}
