package services

import (
	"context"

	"taller-system/internal/dto"
	"taller-system/internal/entities"
	"taller-system/internal/repositories"
)

type BranchService struct {
	branchRepository repositories.BranchRepositoryInterface
}

func NewBranchService(branchRepository repositories.BranchRepositoryInterface) *BranchService {
	return &BranchService{branchRepository: branchRepository}
}

func branchToDTO(b entities.Branch) dto.BranchDTO {
	return dto.BranchDTO{
		ID:        b.ID,
		Nombre:    b.Nombre,
		Direccion: b.Direccion,
		Telefono:  b.Telefono,
	}
}

func (s *BranchService) GetBranches(ctx context.Context) ([]dto.BranchDTO, error) {
	branches, err := s.branchRepository.GetBranches(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.BranchDTO, 0, len(branches))
	for _, b := range branches {
		result = append(result, branchToDTO(b))
	}
	return result, nil
}

func (s *BranchService) FindBranch(ctx context.Context, id uint64) (*dto.BranchDTO, error) {
	branch, err := s.branchRepository.FindBranch(ctx, id)
	if err != nil {
		return nil, err
	}
	result := branchToDTO(*branch)
	return &result, nil
}
