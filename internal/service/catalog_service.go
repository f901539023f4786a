package service

import (
	"context"

	"github.com/Saad200724/ZnPOS/internal/authz"
	"github.com/Saad200724/ZnPOS/internal/dto"
	"github.com/Saad200724/ZnPOS/internal/model"
	"github.com/Saad200724/ZnPOS/internal/repository"
)

// CatalogService covers categories and products. Reads need an authenticated
// principal; writes need the inventory capability. Products are deactivated,
// never deleted.
type CatalogService interface {
	CreateCategory(ctx context.Context, p *authz.Principal, req dto.CreateCategoryRequest) (*model.Category, error)
	GetCategory(ctx context.Context, p *authz.Principal, id int64) (*model.Category, error)
	ListCategories(ctx context.Context, p *authz.Principal) ([]model.Category, error)
	UpdateCategory(ctx context.Context, p *authz.Principal, id int64, req dto.UpdateCategoryRequest) (*model.Category, error)

	CreateProduct(ctx context.Context, p *authz.Principal, req dto.CreateProductRequest) (*model.Product, error)
	GetProduct(ctx context.Context, p *authz.Principal, id int64) (*model.Product, error)
	ListProducts(ctx context.Context, p *authz.Principal, filter dto.ProductFilter) ([]model.Product, error)
	UpdateProduct(ctx context.Context, p *authz.Principal, id int64, req dto.UpdateProductRequest) (*model.Product, error)
	DeactivateProduct(ctx context.Context, p *authz.Principal, id int64) (*model.Product, error)
}

type catalogService struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

func NewCatalogService(categories repository.CategoryRepository, products repository.ProductRepository) CatalogService {
	return &catalogService{categories: categories, products: products}
}

func (s *catalogService) CreateCategory(ctx context.Context, p *authz.Principal, req dto.CreateCategoryRequest) (*model.Category, error) {
	if err := authz.RequirePermission(p, authz.CapabilityInventory); err != nil {
		return nil, err
	}
	if err := validateStruct(&req); err != nil {
		return nil, err
	}
	c := &model.Category{Name: req.Name, Description: req.Description}
	if err := s.categories.Create(ctx, p.BusinessID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *catalogService) GetCategory(ctx context.Context, p *authz.Principal, id int64) (*model.Category, error) {
	if err := authz.RequireAuthenticated(p); err != nil {
		return nil, err
	}
	return s.categories.FindByID(ctx, p.BusinessID, id)
}

func (s *catalogService) ListCategories(ctx context.Context, p *authz.Principal) ([]model.Category, error) {
	if err := authz.RequireAuthenticated(p); err != nil {
		return nil, err
	}
	return s.categories.List(ctx, p.BusinessID)
}

func (s *catalogService) UpdateCategory(ctx context.Context, p *authz.Principal, id int64, req dto.UpdateCategoryRequest) (*model.Category, error) {
	if err := authz.RequirePermission(p, authz.CapabilityInventory); err != nil {
		return nil, err
	}
	if err := validateStruct(&req); err != nil {
		return nil, err
	}
	return s.categories.Update(ctx, p.BusinessID, id, req)
}

func (s *catalogService) CreateProduct(ctx context.Context, p *authz.Principal, req dto.CreateProductRequest) (*model.Product, error) {
	if err := authz.RequirePermission(p, authz.CapabilityInventory); err != nil {
		return nil, err
	}
	if err := validateStruct(&req); err != nil {
		return nil, err
	}
	prod := &model.Product{
		CategoryID:        req.CategoryID,
		Name:              req.Name,
		SKU:               req.SKU,
		Barcode:           req.Barcode,
		Price:             req.Price.InexactFloat64(),
		Cost:              req.Cost.InexactFloat64(),
		Stock:             req.Stock,
		LowStockThreshold: req.LowStockThreshold,
		IsActive:          true,
	}
	if err := s.products.Create(ctx, p.BusinessID, prod); err != nil {
		return nil, err
	}
	return prod, nil
}

func (s *catalogService) GetProduct(ctx context.Context, p *authz.Principal, id int64) (*model.Product, error) {
	if err := authz.RequireAuthenticated(p); err != nil {
		return nil, err
	}
	return s.products.FindByID(ctx, p.BusinessID, id)
}

func (s *catalogService) ListProducts(ctx context.Context, p *authz.Principal, filter dto.ProductFilter) ([]model.Product, error) {
	if err := authz.RequireAuthenticated(p); err != nil {
		return nil, err
	}
	if err := validateStruct(&filter); err != nil {
		return nil, err
	}
	return s.products.List(ctx, p.BusinessID, filter)
}

func (s *catalogService) UpdateProduct(ctx context.Context, p *authz.Principal, id int64, req dto.UpdateProductRequest) (*model.Product, error) {
	if err := authz.RequirePermission(p, authz.CapabilityInventory); err != nil {
		return nil, err
	}
	if err := validateStruct(&req); err != nil {
		return nil, err
	}
	return s.products.Update(ctx, p.BusinessID, id, req)
}

func (s *catalogService) DeactivateProduct(ctx context.Context, p *authz.Principal, id int64) (*model.Product, error) {
	if err := authz.RequirePermission(p, authz.CapabilityInventory); err != nil {
		return nil, err
	}
	return s.products.Deactivate(ctx, p.BusinessID, id)
}
