package repository

import (
	"context"
	"errors"

	"bakery-storefront/internal/model"

	"gorm.io/gorm"
)

// The session store holds at most one row, like the single
// local-storage entry it replaces.
const sessionRowID = 1

type SessionRepository interface {
	// Get returns nil without error when no session is stored.
	Get(ctx context.Context) (*model.Session, error)
	Set(ctx context.Context, session *model.Session) error
	Clear(ctx context.Context) error
}

type sessionRepoImpl struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepoImpl{
		db: db,
	}
}

func (r *sessionRepoImpl) Get(ctx context.Context) (*model.Session, error) {
	var session model.Session
	err := r.db.WithContext(ctx).
		Where("id = ?", sessionRowID).
		First(&session).
		Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}

func (r *sessionRepoImpl) Set(ctx context.Context, session *model.Session) error {
	session.ID = sessionRowID
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *sessionRepoImpl) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("id = ?", sessionRowID).
		Delete(&model.Session{}).
		Error
}
