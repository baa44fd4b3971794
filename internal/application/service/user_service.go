package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kasirku/kasir-api/internal/domain/entity"
	"github.com/kasirku/kasir-api/internal/domain/repository"
	"github.com/kasirku/kasir-api/pkg/apperror"
	"github.com/kasirku/kasir-api/pkg/pagination"
)

// UserService handles admin user management: listing accounts and
// flipping the approval flag that gates protected routes.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers lists accounts, optionally only those awaiting approval
func (s *UserService) ListUsers(ctx context.Context, params *pagination.PaginationParams, pendingOnly bool) (*pagination.PaginatedResult[entity.User], error) {
	users, total, err := s.userRepo.List(ctx, params, pendingOnly)
	if err != nil {
		return nil, err
	}

	meta := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(users, meta), nil
}

// ApproveUser grants a pending account access to protected endpoints
func (s *UserService) ApproveUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	if user.IsApproved {
		return user, nil
	}

	now := time.Now()
	user.IsApproved = true
	user.ApprovedAt = &now

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RevokeUser withdraws a previously granted approval
func (s *UserService) RevokeUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	if user.IsAdmin {
		return nil, apperror.NewBadRequestError("Cannot revoke an admin account")
	}

	user.IsApproved = false
	user.ApprovedAt = nil

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}
	if user.IsAdmin {
		return apperror.NewBadRequestError("Cannot delete an admin account")
	}
	return s.userRepo.Delete(ctx, user.ID)
}
