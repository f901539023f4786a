package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Saad200724/ZnPOS/internal/authz"
	"github.com/Saad200724/ZnPOS/internal/dto"
	"github.com/Saad200724/ZnPOS/internal/model"
	"github.com/Saad200724/ZnPOS/internal/repository"
)

type BusinessService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Get(ctx context.Context, p *authz.Principal) (*model.Business, error)
	Update(ctx context.Context, p *authz.Principal, req dto.UpdateBusinessRequest) (*model.Business, error)
}

type businessService struct {
	businesses repository.BusinessRepository
	users      repository.UserRepository
	bcryptCost int
}

func NewBusinessService(businesses repository.BusinessRepository, users repository.UserRepository, bcryptCost int) BusinessService {
	if bcryptCost == 0 {
		bcryptCost = 12
	}
	return &businessService{businesses: businesses, users: users, bcryptCost: bcryptCost}
}

// Register creates a Business and its first admin user, in that order. The
// two inserts are separate storage operations: if the user step fails the
// business stays persisted, which is surfaced in the logs rather than rolled
// back.
func (s *businessService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	business := &model.Business{
		Name:     req.BusinessName,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		TaxRate:  req.TaxRate.InexactFloat64(),
		Currency: req.Currency,
	}
	if err := s.businesses.Create(ctx, business); err != nil {
		return nil, err
	}

	auth := &authService{users: s.users, bcryptCost: s.bcryptCost}
	hash, err := auth.hashPassword(req.AdminPassword)
	if err != nil {
		return nil, err
	}

	admin := &model.User{
		Username:     req.AdminUsername,
		Email:        req.AdminEmail,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		IsActive:     true,
		Permissions:  model.DefaultPermissions(model.RoleAdmin),
	}
	if err := s.users.Create(ctx, business.ID, admin); err != nil {
		log.Warn().
			Int64("business_id", business.ID).
			Err(err).
			Msg("registration: business persisted but admin creation failed")
		return nil, err
	}

	return &dto.RegisterResponse{
		BusinessID: business.ID,
		Admin:      *userToResponse(admin),
	}, nil
}

func (s *businessService) Get(ctx context.Context, p *authz.Principal) (*model.Business, error) {
	if err := authz.RequireAuthenticated(p); err != nil {
		return nil, err
	}
	return s.businesses.FindByID(ctx, p.BusinessID)
}

func (s *businessService) Update(ctx context.Context, p *authz.Principal, req dto.UpdateBusinessRequest) (*model.Business, error) {
	if err := authz.RequireAdmin(p); err != nil {
		return nil, err
	}
	if err := validateStruct(&req); err != nil {
		return nil, err
	}
	return s.businesses.Update(ctx, p.BusinessID, req)
}
