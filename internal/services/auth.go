package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"taller-system/internal/dto"
	"taller-system/internal/entities"
	"taller-system/internal/repositories"
	apperrors "taller-system/pkg/errors"
	"taller-system/pkg/service"
	"taller-system/pkg/utils"
)

type AuthService struct {
	userRepository repositories.UserRepositoryInterface
	jwtService     service.JWTService
	logger         *zap.Logger
}

func NewAuthService(
	userRepository repositories.UserRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func sessionUserToDTO(u entities.User) dto.SessionUserDTO {
	return dto.SessionUserDTO{
		ID:         u.ID,
		Nombre:     u.Nombre,
		Email:      u.Email,
		Rol:        u.Rol,
		SucursalID: u.SucursalID,
	}
}

// Login verifies credentials and mints the session token the controller sets
// as a cookie. Wrong email and wrong password answer identically.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResultDTO, error) {
	user, err := s.userRepository.FindByEmail(ctx, payload.Email)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !user.Activo {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.PasswordHash, payload.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Rol, user.SucursalID)
	if err != nil {
		s.logger.Error("failed to sign session token", zap.Uint64("userId", user.ID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("user logged in", zap.Uint64("userId", user.ID), zap.String("rol", user.Rol))
	return &dto.LoginResultDTO{User: sessionUserToDTO(*user), Token: token}, nil
}

// Me resolves the session back into the full user record.
func (s *AuthService) Me(ctx context.Context) (*dto.MeDTO, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.MeDTO{User: sessionUserToDTO(*user)}, nil
}
