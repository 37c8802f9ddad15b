package service

import (
	"fmt"

	"github.com/autoflip/backend/internal/model"
	"github.com/autoflip/backend/internal/model/dto"
	"github.com/autoflip/backend/internal/repository"
)

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// Upsert creates the user or overwrites the name on an existing email.
func (s *UserService) Upsert(req *dto.UpsertUserRequest) error {
	user := &model.User{
		Email: req.Email,
		Name:  req.Name,
	}

	if err := s.userRepo.Upsert(user); err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}

	return nil
}
