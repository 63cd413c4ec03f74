package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"taller-system/internal/dto"
	"taller-system/internal/entities"
	"taller-system/internal/repositories"
	"taller-system/pkg/utils"
)

type UserService struct {
	userRepository repositories.UserRepositoryInterface
	logger         *zap.Logger
}

func NewUserService(userRepository repositories.UserRepositoryInterface, logger *zap.Logger) *UserService {
	return &UserService{userRepository: userRepository, logger: logger}
}

func userToDTO(u entities.User) dto.UserDTO {
	return dto.UserDTO{
		ID:            u.ID,
		Nombre:        u.Nombre,
		Email:         u.Email,
		Rol:           u.Rol,
		SucursalID:    u.SucursalID,
		Activo:        u.Activo,
		FechaCreacion: u.FechaCreacion.Format(time.RFC3339),
	}
}

func (s *UserService) GetUsers(ctx context.Context, limit, offset uint64) ([]dto.UserDTO, uint64, error) {
	users, total, err := s.userRepository.GetUsers(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	result := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		result = append(result, userToDTO(u))
	}
	return result, total, nil
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := userToDTO(*user)
	return &result, nil
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error) {
	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	user := entities.User{
		Nombre:       payload.Nombre,
		Email:        payload.Email,
		PasswordHash: hash,
		Rol:          payload.Rol,
		SucursalID:   payload.SucursalID,
		Activo:       true,
	}
	newID, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created", zap.Uint64("userId", newID), zap.String("rol", payload.Rol))
	return s.FindUser(ctx, newID)
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error) {
	existing, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Nombre != nil {
		existing.Nombre = *payload.Nombre
	}
	if payload.Email != nil {
		existing.Email = *payload.Email
	}
	if payload.Password != nil {
		hash, err := utils.HashPassword(*payload.Password)
		if err != nil {
			return nil, err
		}
		existing.PasswordHash = hash
	}
	if payload.Rol != nil {
		existing.Rol = *payload.Rol
	}
	if payload.SucursalID != nil {
		existing.SucursalID = *payload.SucursalID
	}
	if payload.Activo != nil {
		existing.Activo = *payload.Activo
	}

	if err := s.userRepository.UpdateUser(ctx, id, *existing); err != nil {
		return nil, err
	}
	return s.FindUser(ctx, id)
}

func (s *UserService) DeactivateUser(ctx context.Context, id uint64) error {
	if err := s.userRepository.DeactivateUser(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deactivated", zap.Uint64("userId", id))
	return nil
}
