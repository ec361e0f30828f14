package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	mem "globetrotter/pkg/memcache"
	"globetrotter/pkg/utils"
)

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest, ctx context.Context) (*response_models.AccountLoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	GetProfile(ctx context.Context, userId uuid.UUID) (*response_models.AccountResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.AccountResponse, error)
	Logout(ctx context.Context, claims *utils.Claims) error
	ListAccounts(ctx context.Context, page int, pageSize int) ([]response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	jwt         *utils.JWTManager
	store       mem.Store
}

func NewAccountService(accountRepo repositories.AccountRepository, jwt *utils.JWTManager, store mem.Store) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		jwt:         jwt,
		store:       store,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// optional maps a blank form value to NULL.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func toAccountResponse(account *db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:             account.ID.String(),
		FirstName:      account.FirstName,
		LastName:       account.LastName,
		Email:          account.Email,
		Phone:          account.Phone,
		City:           account.City,
		Country:        account.Country,
		AdditionalInfo: account.AdditionalInfo,
		Role:           account.Role,
		CreatedAt:      utils.FormatRFC3339IST(utils.FromUnixSecondsIST(account.CreatedAt)),
	}
}

func (a *AccountService) Login(request request_models.LoginRequest, ctx context.Context) (*response_models.AccountLoginResponse, error) {

	startTime := time.Now()
	email := normalizeEmail(request.Email)

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	zap.L().Debug("login lookup", zap.Duration("elapsed", time.Since(startTime)))

	// Unknown email and wrong password look the same to the caller.
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	err = utils.ComparePasswords(account.PasswordHash, request.Password)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	zap.L().Debug("password verification", zap.Duration("elapsed", time.Since(startTime)))

	token, err := a.jwt.CreateToken(account.ID, account.Email, account.Role)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	zap.L().Info("user logged in",
		zap.String("user_id", account.ID.String()),
		zap.Duration("elapsed", time.Since(startTime)))

	return &response_models.AccountLoginResponse{
		Token: token,
		User:  toAccountResponse(account),
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {

	email := normalizeEmail(request.Email)
	firstName := strings.TrimSpace(request.FirstName)
	if email == "" || firstName == "" || request.Password == "" {
		return nil, utils.ErrInvalidInput
	}

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	country := strings.TrimSpace(request.Country)
	if country == "" {
		country = db_models.DefaultCountry
	}

	newAccount := &db_models.Account{
		FirstName:      firstName,
		LastName:       strings.TrimSpace(request.LastName),
		Email:          email,
		PasswordHash:   hashedPassword,
		Phone:          optional(request.Phone),
		City:           optional(request.City),
		Country:        country,
		AdditionalInfo: optional(request.AdditionalInfo),
		Role:           db_models.RoleUser,
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	zap.L().Info("account registered", zap.String("user_id", newAccount.ID.String()))

	resp := toAccountResponse(newAccount)
	return &resp, nil
}

func (a *AccountService) GetProfile(ctx context.Context, userId uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	resp := toAccountResponse(account)
	return &resp, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, userId uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.AccountResponse, error) {

	changes := map[string]interface{}{}

	if request.FirstName != nil {
		firstName := strings.TrimSpace(*request.FirstName)
		if firstName == "" {
			return nil, utils.ErrInvalidInput
		}
		changes["first_name"] = firstName
	}
	if request.LastName != nil {
		changes["last_name"] = strings.TrimSpace(*request.LastName)
	}
	if request.Phone != nil {
		changes["phone"] = optional(*request.Phone)
	}
	if request.City != nil {
		changes["city"] = optional(*request.City)
	}
	if request.AdditionalInfo != nil {
		changes["additional_info"] = optional(*request.AdditionalInfo)
	}
	if request.Country != nil {
		country := strings.TrimSpace(*request.Country)
		if country == "" {
			country = db_models.DefaultCountry
		}
		changes["country"] = country
	}
	if request.Email != nil {
		email := normalizeEmail(*request.Email)
		if email == "" {
			return nil, utils.ErrInvalidInput
		}
		owner, err := a.accountRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if owner != nil && owner.ID != userId {
			return nil, utils.ErrEmailAlreadyExists
		}
		changes["email"] = email
	}

	if len(changes) > 0 {
		if err := a.accountRepo.Update(ctx, userId, changes); err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				return nil, utils.ErrAccountNotFound
			case errors.Is(err, repositories.ErrDuplicateKey):
				return nil, utils.ErrEmailAlreadyExists
			default:
				return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
			}
		}
	}

	return a.GetProfile(ctx, userId)
}

// Logout puts the token id on the denylist until the token would have
// expired on its own.
func (a *AccountService) Logout(ctx context.Context, claims *utils.Claims) error {
	if claims == nil || claims.ID == "" {
		return utils.ErrInvalidToken
	}

	ttl := a.jwt.TTL()
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}

	if err := a.store.Set(ctx, mem.RevokedTokenPrefix+claims.ID, claims.UserID, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	zap.L().Info("user logged out", zap.String("user_id", claims.UserID))
	return nil
}

func (a *AccountService) ListAccounts(ctx context.Context, page int, pageSize int) ([]response_models.AccountResponse, error) {
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}

	accounts, err := a.accountRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.AccountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, toAccountResponse(&accounts[i]))
	}
	return out, nil
}
