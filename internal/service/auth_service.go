package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Saad200724/ZnPOS/internal/apierror"
	"github.com/Saad200724/ZnPOS/internal/authz"
	"github.com/Saad200724/ZnPOS/internal/dto"
	"github.com/Saad200724/ZnPOS/internal/model"
	"github.com/Saad200724/ZnPOS/internal/repository"
)

// MaxEmployeesPerBusiness caps non-admin users per tenant. Enforced before
// creation, not by a storage constraint.
const MaxEmployeesPerBusiness = 10

type AuthService interface {
	Authenticate(ctx context.Context, req dto.LoginRequest) (*dto.UserResponse, error)
	CreateUser(ctx context.Context, p *authz.Principal, req dto.CreateUserRequest) (*dto.UserResponse, error)
	ListEmployees(ctx context.Context, p *authz.Principal) ([]dto.UserResponse, error)
	CountEmployees(ctx context.Context, p *authz.Principal) (int64, error)
	UpdatePermissions(ctx context.Context, p *authz.Principal, userID int64, req dto.UpdatePermissionsRequest) (*dto.UserResponse, error)
	ToggleActive(ctx context.Context, p *authz.Principal, userID int64) (*dto.UserResponse, error)
	DeleteEmployee(ctx context.Context, p *authz.Principal, userID int64) error
}

type authService struct {
	users      repository.UserRepository
	bcryptCost int
}

func NewAuthService(users repository.UserRepository, bcryptCost int) AuthService {
	if bcryptCost == 0 {
		bcryptCost = 12
	}
	return &authService{users: users, bcryptCost: bcryptCost}
}

// Authenticate verifies an identifier (username or email) and password.
// Usernames are unique per tenant only, so the identifier can match users in
// several businesses; the password picks the right one. Unknown identifier
// and wrong password are externally indistinguishable.
func (s *authService) Authenticate(ctx context.Context, req dto.LoginRequest) (*dto.UserResponse, error) {
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	candidates, err := s.users.ListActiveByIdentifier(ctx, req.Identifier)
	if err != nil {
		return nil, err
	}

	for i := range candidates {
		user := &candidates[i]

		if user.HasHashedPassword() {
			if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) == nil {
				return userToResponse(user), nil
			}
			continue
		}

		// Legacy plaintext record. On an exact match, rehash and persist
		// synchronously before returning — a one-time read-path migration.
		if subtle.ConstantTimeCompare([]byte(user.PasswordHash), []byte(req.Password)) != 1 {
			continue
		}
		hash, err := s.hashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		if err := s.users.SetPasswordHash(ctx, user.BusinessID, user.ID, hash); err != nil {
			return nil, err
		}
		user.PasswordHash = hash
		return userToResponse(user), nil
	}

	return nil, invalidCredentials()
}

func (s *authService) CreateUser(ctx context.Context, p *authz.Principal, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := authz.RequirePermission(p, authz.CapabilityEmployees); err != nil {
		return nil, err
	}
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	if req.Role != model.RoleAdmin {
		n, err := s.users.CountEmployees(ctx, p.BusinessID)
		if err != nil {
			return nil, err
		}
		if n >= MaxEmployeesPerBusiness {
			return nil, apierror.CapacityExceeded("employee limit reached")
		}
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	perms := model.DefaultPermissions(req.Role)
	if req.Permissions != nil {
		perms = *req.Permissions
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     true,
		Permissions:  perms,
	}
	if err := s.users.Create(ctx, p.BusinessID, user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

func (s *authService) ListEmployees(ctx context.Context, p *authz.Principal) ([]dto.UserResponse, error) {
	if err := authz.RequireAdmin(p); err != nil {
		return nil, err
	}
	users, err := s.users.ListEmployees(ctx, p.BusinessID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponse, len(users))
	for i := range users {
		resp[i] = *userToResponse(&users[i])
	}
	return resp, nil
}

func (s *authService) CountEmployees(ctx context.Context, p *authz.Principal) (int64, error) {
	if err := authz.RequireAdmin(p); err != nil {
		return 0, err
	}
	return s.users.CountEmployees(ctx, p.BusinessID)
}

func (s *authService) UpdatePermissions(ctx context.Context, p *authz.Principal, userID int64, req dto.UpdatePermissionsRequest) (*dto.UserResponse, error) {
	if err := authz.RequireAdmin(p); err != nil {
		return nil, err
	}
	user, err := s.users.UpdatePermissions(ctx, p.BusinessID, userID, req.Permissions)
	if err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

func (s *authService) ToggleActive(ctx context.Context, p *authz.Principal, userID int64) (*dto.UserResponse, error) {
	if err := authz.RequireAdmin(p); err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, p.BusinessID, userID)
	if err != nil {
		return nil, err
	}
	user, err = s.users.SetActive(ctx, p.BusinessID, userID, !user.IsActive)
	if err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

// DeleteEmployee removes a non-admin user. Deleting an admin is refused
// unconditionally.
func (s *authService) DeleteEmployee(ctx context.Context, p *authz.Principal, userID int64) error {
	if err := authz.RequireAdmin(p); err != nil {
		return err
	}
	user, err := s.users.FindByID(ctx, p.BusinessID, userID)
	if err != nil {
		return err
	}
	if user.IsAdmin() {
		return apierror.Forbidden("admin users cannot be deleted")
	}
	return s.users.Delete(ctx, p.BusinessID, userID)
}

func (s *authService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func invalidCredentials() error {
	return apierror.Unauthorized("invalid credentials")
}

func userToResponse(u *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          u.ID,
		BusinessID:  u.BusinessID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		IsActive:    u.IsActive,
		Permissions: u.Permissions,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}
