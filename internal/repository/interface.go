package repository

import (
	"context"

	"github.com/AzmathBegum/finance-tracker/internal/entity"
)

// UserStore persists account identities.
type UserStore interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUserByID(ctx context.Context, id int) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	// DeleteUser removes the user and every transaction they own in one
	// database transaction.
	DeleteUser(ctx context.Context, id int) error
}

// TransactionStore persists per-user financial records. Every read and write
// is scoped to the owning user; a row belonging to someone else behaves
// exactly like a missing row.
type TransactionStore interface {
	ListByUser(ctx context.Context, userID int) ([]*entity.Transaction, error)
	Create(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error)
	GetByID(ctx context.Context, userID, id int) (*entity.Transaction, error)
	Update(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error)
	Delete(ctx context.Context, userID, id int) error
}
