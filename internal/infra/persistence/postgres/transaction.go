package postgres

import (
	"context"

	"servicedesk/internal/domain/repository"

	"gorm.io/gorm"
)

type txScope struct {
	tx *gorm.DB
}

func (s txScope) Billing() repository.BillingRepository {
	return NewBillingRepository(s.tx)
}

func (s txScope) Complaints() repository.ComplaintRepository {
	return NewComplaintRepository(s.tx)
}

type transactionManager struct {
	db *gorm.DB
}

// NewTransactionManager runs billing amendments under SELECT ... FOR UPDATE row locks.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute returns fn's error untouched so domain errors survive the rollback.
func (m *transactionManager) Execute(ctx context.Context, fn func(scope repository.TxScope) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txScope{tx: tx})
	})
}
