package service

import "context"

// TransactionManager runs fn inside a transaction carried by ctx.
// Repositories pick the transaction up through the sqlx ctx getter.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
