package service

import (
	"context"

	"github.com/Saad200724/ZnPOS/internal/authz"
	"github.com/Saad200724/ZnPOS/internal/dto"
	"github.com/Saad200724/ZnPOS/internal/model"
	"github.com/Saad200724/ZnPOS/internal/repository"
)

type CustomerService interface {
	Create(ctx context.Context, p *authz.Principal, req dto.CreateCustomerRequest) (*model.Customer, error)
	Get(ctx context.Context, p *authz.Principal, id int64) (*model.Customer, error)
	List(ctx context.Context, p *authz.Principal) ([]model.Customer, error)
	Update(ctx context.Context, p *authz.Principal, id int64, req dto.UpdateCustomerRequest) (*model.Customer, error)
}

type customerService struct {
	customers repository.CustomerRepository
}

func NewCustomerService(customers repository.CustomerRepository) CustomerService {
	return &customerService{customers: customers}
}

func (s *customerService) Create(ctx context.Context, p *authz.Principal, req dto.CreateCustomerRequest) (*model.Customer, error) {
	if err := authz.RequirePermission(p, authz.CapabilityCustomers); err != nil {
		return nil, err
	}
	if err := validateStruct(&req); err != nil {
		return nil, err
	}
	c := &model.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.customers.Create(ctx, p.BusinessID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) Get(ctx context.Context, p *authz.Principal, id int64) (*model.Customer, error) {
	if err := authz.RequirePermission(p, authz.CapabilityCustomers); err != nil {
		return nil, err
	}
	return s.customers.FindByID(ctx, p.BusinessID, id)
}

func (s *customerService) List(ctx context.Context, p *authz.Principal) ([]model.Customer, error) {
	if err := authz.RequirePermission(p, authz.CapabilityCustomers); err != nil {
		return nil, err
	}
	return s.customers.List(ctx, p.BusinessID)
}

func (s *customerService) Update(ctx context.Context, p *authz.Principal, id int64, req dto.UpdateCustomerRequest) (*model.Customer, error) {
	if err := authz.RequirePermission(p, authz.CapabilityCustomers); err != nil {
		return nil, err
	}
	if err := validateStruct(&req); err != nil {
		return nil, err
	}
	return s.customers.Update(ctx, p.BusinessID, id, req)
}
