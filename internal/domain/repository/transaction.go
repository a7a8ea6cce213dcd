package repository

import "context"

// TxScope hands out repositories that share one open transaction.
type TxScope interface {
	Billing() BillingRepository
	Complaints() ComplaintRepository
}

// TransactionManager commits fn's writes together, or none of them when fn fails.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(scope TxScope) error) error
}
