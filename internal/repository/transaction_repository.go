package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/AzmathBegum/finance-tracker/internal/apperr"
	"github.com/AzmathBegum/finance-tracker/internal/entity"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db}
}

// ListByUser returns the user's transactions ordered by date descending.
// Same-date rows come back newest id first, which keeps the order stable
// across calls.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID int) ([]*entity.Transaction, error) {
	query := `SELECT id, user_id, amount, type, category, description, date
		FROM transactions WHERE user_id = ? ORDER BY date DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []*entity.Transaction{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) Create(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
	query := `INSERT INTO transactions (user_id, amount, type, category, description, date)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		tx.UserID, tx.Amount, string(tx.Type), tx.Category, nullableString(tx.Description), tx.Date)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	tx.ID = int(id)
	return tx, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, userID, id int) (*entity.Transaction, error) {
	query := `SELECT id, user_id, amount, type, category, description, date
		FROM transactions WHERE id = ? AND user_id = ?`

	tx, err := scanTransaction(r.db.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("transaction not found")
	}
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (r *TransactionRepository) Update(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
	query := `UPDATE transactions SET amount = ?, type = ?, category = ?, description = ?, date = ?
		WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query,
		tx.Amount, string(tx.Type), tx.Category, nullableString(tx.Description), tx.Date, tx.ID, tx.UserID)
	if err != nil {
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// The row may also exist with identical values; re-check ownership so
		// a no-op update is not reported as missing.
		if _, err := r.GetByID(ctx, tx.UserID, tx.ID); err != nil {
			return nil, err
		}
	}
	return tx, nil
}

func (r *TransactionRepository) Delete(ctx context.Context, userID, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("transaction not found")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*entity.Transaction, error) {
	tx := &entity.Transaction{}
	var description sql.NullString
	err := row.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Type, &tx.Category, &description, &tx.Date)
	if err != nil {
		return nil, err
	}
	tx.Description = description.String
	return tx, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
