package repository

import (
	"context"
	"errors"

	"bakery-storefront/internal/model"

	"gorm.io/gorm"
)

const lastTransactionRowID = 1

// TransactionRepository keeps the record of the most recent successful
// purchase, replacing the previous one on every save.
type TransactionRepository interface {
	SaveLast(ctx context.Context, record *model.LastTransaction) error
	// GetLast returns nil without error when no purchase has succeeded yet.
	GetLast(ctx context.Context) (*model.LastTransaction, error)
}

type transactionRepoImpl struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepoImpl{
		db: db,
	}
}

func (r *transactionRepoImpl) SaveLast(ctx context.Context, record *model.LastTransaction) error {
	record.ID = lastTransactionRowID
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *transactionRepoImpl) GetLast(ctx context.Context) (*model.LastTransaction, error) {
	var record model.LastTransaction
	err := r.db.WithContext(ctx).
		Where("id = ?", lastTransactionRowID).
		First(&record).
		Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}
