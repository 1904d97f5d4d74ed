package database

import (
	"context"

	"cryofood/internal/domain/entity"
	"cryofood/internal/domain/repository"
	"cryofood/internal/errors"
	"cryofood/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (repo *accountRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.Account, error) {
	var m model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("identifier = ?", identifier).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by identifier")
	}

	return toAccountDomain(&m), nil
}

func (repo *accountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	var models []*model.AccountModel
	if err := repo.db.WithContext(ctx).Order("identifier ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(models))
	for _, m := range models {
		accounts = append(accounts, toAccountDomain(m))
	}

	return accounts, nil
}

func (repo *accountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.AccountModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count accounts")
	}

	return count, nil
}

func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	m := fromAccountDomain(account)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAccountExists
		}

		return errors.Wrap(err, "failed to create account")
	}

	account.CreatedAt = m.CreatedAt
	account.UpdatedAt = m.UpdatedAt

	return nil
}

// UpdateSecretHash replaces the hash in one statement, so a concurrent reader
// sees either the old hash or the new one.
func (repo *accountRepository) UpdateSecretHash(ctx context.Context, identifier, secretHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("identifier = ?", identifier).
		Update("secret_hash", secretHash)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update account secret")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func (repo *accountRepository) Delete(ctx context.Context, identifier string) error {
	result := repo.db.WithContext(ctx).
		Where("identifier = ?", identifier).
		Delete(&model.AccountModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func toAccountDomain(m *model.AccountModel) *entity.Account {
	return &entity.Account{
		Identifier: m.Identifier,
		SecretHash: m.SecretHash,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromAccountDomain(account *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		Identifier: account.Identifier,
		SecretHash: account.SecretHash,
		CreatedAt:  account.CreatedAt,
		UpdatedAt:  account.UpdatedAt,
	}
}
