package service

import (
	"context"
	"sort"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Saad200724/ZnPOS/internal/apierror"
	"github.com/Saad200724/ZnPOS/internal/authz"
	"github.com/Saad200724/ZnPOS/internal/dto"
	"github.com/Saad200724/ZnPOS/internal/model"
	"github.com/Saad200724/ZnPOS/internal/repository"
)

// ── In-memory repository stubs ────────────────────────────────────────────────

type stubUserRepo struct {
	nextID int64
	users  map[int64]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, businessID int64, u *model.User) error {
	r.nextID++
	u.ID = r.nextID
	u.BusinessID = businessID
	u.CreatedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, businessID, id int64) (*model.User, error) {
	u, ok := r.users[id]
	if !ok || u.BusinessID != businessID {
		return nil, apierror.NotFound("user not found")
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) ListActiveByIdentifier(_ context.Context, identifier string) ([]model.User, error) {
	out := []model.User{}
	for _, u := range r.users {
		if u.IsActive && (u.Username == identifier || u.Email == identifier) {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) ListEmployees(_ context.Context, businessID int64) ([]model.User, error) {
	out := []model.User{}
	for _, u := range r.users {
		if u.BusinessID == businessID && u.Role != model.RoleAdmin {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) CountEmployees(_ context.Context, businessID int64) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.BusinessID == businessID && u.Role != model.RoleAdmin {
			n++
		}
	}
	return n, nil
}

func (r *stubUserRepo) UpdatePermissions(_ context.Context, businessID, id int64, perms model.Permissions) (*model.User, error) {
	u, ok := r.users[id]
	if !ok || u.BusinessID != businessID {
		return nil, apierror.NotFound("user not found")
	}
	u.Permissions = perms
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) SetActive(_ context.Context, businessID, id int64, active bool) (*model.User, error) {
	u, ok := r.users[id]
	if !ok || u.BusinessID != businessID {
		return nil, apierror.NotFound("user not found")
	}
	u.IsActive = active
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) SetPasswordHash(_ context.Context, businessID, id int64, hash string) error {
	u, ok := r.users[id]
	if !ok || u.BusinessID != businessID {
		return apierror.NotFound("user not found")
	}
	u.PasswordHash = hash
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, businessID, id int64) error {
	u, ok := r.users[id]
	if !ok || u.BusinessID != businessID {
		return apierror.NotFound("user not found")
	}
	delete(r.users, id)
	return nil
}

type stubBusinessRepo struct {
	nextID     int64
	businesses map[int64]*model.Business
}

func newStubBusinessRepo() *stubBusinessRepo {
	return &stubBusinessRepo{businesses: make(map[int64]*model.Business)}
}

func (r *stubBusinessRepo) Create(_ context.Context, b *model.Business) error {
	r.nextID++
	b.ID = r.nextID
	b.CreatedAt = time.Now()
	cp := *b
	r.businesses[b.ID] = &cp
	return nil
}

func (r *stubBusinessRepo) FindByID(_ context.Context, id int64) (*model.Business, error) {
	b, ok := r.businesses[id]
	if !ok {
		return nil, apierror.NotFound("business not found")
	}
	cp := *b
	return &cp, nil
}

func (r *stubBusinessRepo) Update(_ context.Context, id int64, req dto.UpdateBusinessRequest) (*model.Business, error) {
	b, ok := r.businesses[id]
	if !ok {
		return nil, apierror.NotFound("business not found")
	}
	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.TaxRate != nil {
		b.TaxRate = req.TaxRate.InexactFloat64()
	}
	if req.Currency != nil {
		b.Currency = *req.Currency
	}
	cp := *b
	return &cp, nil
}

type stubCategoryRepo struct {
	nextID     int64
	categories map[int64]*model.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[int64]*model.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, businessID int64, c *model.Category) error {
	r.nextID++
	c.ID = r.nextID
	c.BusinessID = businessID
	c.CreatedAt = time.Now()
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, businessID, id int64) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok || c.BusinessID != businessID {
		return nil, apierror.NotFound("category not found")
	}
	cp := *c
	return &cp, nil
}

func (r *stubCategoryRepo) List(_ context.Context, businessID int64) ([]model.Category, error) {
	out := []model.Category{}
	for _, c := range r.categories {
		if c.BusinessID == businessID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, businessID, id int64, req dto.UpdateCategoryRequest) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok || c.BusinessID != businessID {
		return nil, apierror.NotFound("category not found")
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	cp := *c
	return &cp, nil
}

type stubProductRepo struct {
	nextID   int64
	products map[int64]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[int64]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, businessID int64, p *model.Product) error {
	r.nextID++
	p.ID = r.nextID
	p.BusinessID = businessID
	p.CreatedAt = time.Now()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, businessID, id int64) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok || p.BusinessID != businessID {
		return nil, apierror.NotFound("product not found")
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) List(_ context.Context, businessID int64, filter dto.ProductFilter) ([]model.Product, error) {
	out := []model.Product{}
	for _, p := range r.products {
		if p.BusinessID != businessID {
			continue
		}
		switch filter.Active {
		case "false":
			if p.IsActive {
				continue
			}
		case "all":
		default:
			if !p.IsActive {
				continue
			}
		}
		if filter.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *filter.CategoryID) {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, businessID, id int64, req dto.UpdateProductRequest) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok || p.BusinessID != businessID {
		return nil, apierror.NotFound("product not found")
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Price != nil {
		p.Price = req.Price.InexactFloat64()
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.LowStockThreshold != nil {
		p.LowStockThreshold = *req.LowStockThreshold
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) Deactivate(_ context.Context, businessID, id int64) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok || p.BusinessID != businessID {
		return nil, apierror.NotFound("product not found")
	}
	p.IsActive = false
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) ListLowStock(_ context.Context, businessID int64) ([]model.Product, error) {
	out := []model.Product{}
	for _, p := range r.products {
		if p.BusinessID == businessID && p.IsActive && p.IsLowStock() {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stock < out[j].Stock })
	return out, nil
}

type stubCustomerRepo struct {
	nextID    int64
	customers map[int64]*model.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[int64]*model.Customer)}
}

func (r *stubCustomerRepo) Create(_ context.Context, businessID int64, c *model.Customer) error {
	r.nextID++
	c.ID = r.nextID
	c.BusinessID = businessID
	c.CreatedAt = time.Now()
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, businessID, id int64) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok || c.BusinessID != businessID {
		return nil, apierror.NotFound("customer not found")
	}
	cp := *c
	return &cp, nil
}

func (r *stubCustomerRepo) List(_ context.Context, businessID int64) ([]model.Customer, error) {
	out := []model.Customer{}
	for _, c := range r.customers {
		if c.BusinessID == businessID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, businessID, id int64, req dto.UpdateCustomerRequest) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok || c.BusinessID != businessID {
		return nil, apierror.NotFound("customer not found")
	}
	if req.FirstName != nil {
		c.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		c.LastName = *req.LastName
	}
	cp := *c
	return &cp, nil
}

func (r *stubCustomerRepo) RecordSpend(_ context.Context, businessID, id int64, amount float64, points int) error {
	c, ok := r.customers[id]
	if !ok || c.BusinessID != businessID {
		return apierror.NotFound("customer not found")
	}
	c.TotalSpent += amount
	c.LoyaltyPoints += points
	return nil
}

type stubTransactionRepo struct {
	nextID     int64
	nextItemID int64
	headers    map[int64]*model.Transaction
	items      []model.TransactionItem

	// failItemAt makes the Nth InsertItem call fail (1-based); 0 disables.
	failItemAt int
	itemCalls  int
}

func newStubTransactionRepo() *stubTransactionRepo {
	return &stubTransactionRepo{headers: make(map[int64]*model.Transaction)}
}

func (r *stubTransactionRepo) CreateHeader(_ context.Context, businessID int64, t *model.Transaction) error {
	r.nextID++
	t.ID = r.nextID
	t.BusinessID = businessID
	t.CreatedAt = time.Now()
	cp := *t
	r.headers[t.ID] = &cp
	return nil
}

func (r *stubTransactionRepo) InsertItem(_ context.Context, it *model.TransactionItem) error {
	r.itemCalls++
	if r.failItemAt > 0 && r.itemCalls == r.failItemAt {
		return apierror.StoreUnavailable(context.DeadlineExceeded)
	}
	r.nextItemID++
	it.ID = r.nextItemID
	it.CreatedAt = time.Now()
	r.items = append(r.items, *it)
	return nil
}

func (r *stubTransactionRepo) SetStatus(_ context.Context, businessID, id int64, status string) error {
	t, ok := r.headers[id]
	if !ok || t.BusinessID != businessID {
		return apierror.NotFound("transaction not found")
	}
	t.Status = status
	return nil
}

func (r *stubTransactionRepo) FindByID(_ context.Context, businessID, id int64) (*model.Transaction, error) {
	t, ok := r.headers[id]
	if !ok || t.BusinessID != businessID {
		return nil, apierror.NotFound("transaction not found")
	}
	cp := *t
	return &cp, nil
}

func (r *stubTransactionRepo) List(_ context.Context, businessID int64, limit int) ([]model.Transaction, error) {
	out := []model.Transaction{}
	for _, t := range r.headers {
		if t.BusinessID == businessID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubTransactionRepo) ListItems(_ context.Context, transactionID int64) ([]model.TransactionItem, error) {
	out := []model.TransactionItem{}
	for _, it := range r.items {
		if it.TransactionID == transactionID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubTransactionRepo) ListStalePending(_ context.Context, cutoff time.Time, limit int) ([]model.Transaction, error) {
	out := []model.Transaction{}
	for _, t := range r.headers {
		if t.Status == model.TxStatusPending && t.CreatedAt.Before(cutoff) {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type stubReportRepo struct {
	summary repository.SalesSummary
	rows    []repository.TopProductRow
}

func (r *stubReportRepo) SalesSince(_ context.Context, _ int64, _ time.Time) (repository.SalesSummary, error) {
	return r.summary, nil
}

func (r *stubReportRepo) TopProducts(_ context.Context, _ int64, limit int) ([]repository.TopProductRow, error) {
	rows := r.rows
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func adminPrincipal(businessID int64) *authz.Principal {
	return &authz.Principal{
		UserID:      1,
		BusinessID:  businessID,
		Role:        model.RoleAdmin,
		Permissions: model.DefaultPermissions(model.RoleAdmin),
	}
}

func staffPrincipal(businessID int64, perms model.Permissions) *authz.Principal {
	return &authz.Principal{
		UserID:      2,
		BusinessID:  businessID,
		Role:        model.RoleEmployee,
		Permissions: perms,
	}
}

func mustHash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}
