package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"globetrotter/internal/models/db_models"
)

type AccountRepository interface {
	InsertTx(account *db_models.Account, ctx context.Context) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) error
	List(ctx context.Context, page int, pageSize int) ([]db_models.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {

	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) InsertTx(account *db_models.Account, ctx context.Context) error {
	err := a.db.WithContext(ctx).Create(account).Error
	if isUniqueViolation(err) {
		return fmt.Errorf("insert account %s: %w", account.Email, ErrDuplicateKey)
	}
	return err
}

func (a *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

// Update applies column changes; a missing row is reported as gorm.ErrRecordNotFound.
func (a *accountRepository) Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}
	res := a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Updates(changes)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return fmt.Errorf("update account %s: %w", id, ErrDuplicateKey)
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (a *accountRepository) List(ctx context.Context, page int, pageSize int) ([]db_models.Account, error) {
	var accounts []db_models.Account
	err := a.db.WithContext(ctx).
		Scopes(paginate(page, pageSize)).
		Order("created_at DESC").
		Order("id DESC").
		Find(&accounts).Error
	return accounts, err
}
