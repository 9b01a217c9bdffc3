package unitofwork

import (
	"context"
	"fmt"

	"ventures-chat-be/internal/repository/contract"
	"ventures-chat-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserSessionRepository() contract.UserSessionRepository {
	return implementation.NewUserSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SessionMessageRepository() contract.SessionMessageRepository {
	return implementation.NewSessionMessageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MessageCitationRepository() contract.MessageCitationRepository {
	return implementation.NewMessageCitationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FeedbackRepository() contract.FeedbackRepository {
	return implementation.NewFeedbackRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ExtractedDataRepository() contract.ExtractedDataRepository {
	return implementation.NewExtractedDataRepository(u.getDB())
}
