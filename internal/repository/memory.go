package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/AzmathBegum/finance-tracker/internal/apperr"
	"github.com/AzmathBegum/finance-tracker/internal/entity"
)

// MemoryUserStore is an in-memory UserStore used by tests and local runs
// without a database.
type MemoryUserStore struct {
	mu     sync.Mutex
	nextID int
	users  map[int]*entity.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{nextID: 1, users: map[int]*entity.User{}}
}

func (s *MemoryUserStore) CreateUser(_ context.Context, user *entity.User) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email || u.Username == user.Username {
			return nil, apperr.New(apperr.KindValidation, "email or username already registered")
		}
	}

	cp := *user
	cp.ID = s.nextID
	s.nextID++
	s.users[cp.ID] = &cp

	out := cp
	return &out, nil
}

func (s *MemoryUserStore) GetUserByID(_ context.Context, id int) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperr.NotFound("user not found")
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryUserStore) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.NotFound("user not found")
}

func (s *MemoryUserStore) GetUserByUsername(_ context.Context, username string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.NotFound("user not found")
}

// DeleteUser removes only the user row; transactions live in a separate
// in-memory store. The MySQL implementation carries the real cascade.
func (s *MemoryUserStore) DeleteUser(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return apperr.NotFound("user not found")
	}
	delete(s.users, id)
	return nil
}

// MemoryTransactionStore is an in-memory TransactionStore with the same
// ownership scoping and ordering as the MySQL implementation.
type MemoryTransactionStore struct {
	mu           sync.Mutex
	nextID       int
	transactions map[int]*entity.Transaction
}

func NewMemoryTransactionStore() *MemoryTransactionStore {
	return &MemoryTransactionStore{nextID: 1, transactions: map[int]*entity.Transaction{}}
}

func (s *MemoryTransactionStore) ListByUser(_ context.Context, userID int) ([]*entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*entity.Transaction{}
	for _, tx := range s.transactions {
		if tx.UserID == userID {
			cp := *tx
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date.Time) {
			return out[i].Date.After(out[j].Date.Time)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *MemoryTransactionStore) Create(_ context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *tx
	cp.ID = s.nextID
	s.nextID++
	s.transactions[cp.ID] = &cp

	out := cp
	return &out, nil
}

func (s *MemoryTransactionStore) GetByID(_ context.Context, userID, id int) (*entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.transactions[id]
	if !ok || tx.UserID != userID {
		return nil, apperr.NotFound("transaction not found")
	}
	cp := *tx
	return &cp, nil
}

func (s *MemoryTransactionStore) Update(_ context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.transactions[tx.ID]
	if !ok || existing.UserID != tx.UserID {
		return nil, apperr.NotFound("transaction not found")
	}
	cp := *tx
	s.transactions[cp.ID] = &cp

	out := cp
	return &out, nil
}

func (s *MemoryTransactionStore) Delete(_ context.Context, userID, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.transactions[id]
	if !ok || tx.UserID != userID {
		return apperr.NotFound("transaction not found")
	}
	delete(s.transactions, id)
	return nil
}
