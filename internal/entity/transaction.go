package entity

import "github.com/shopspring/decimal"

// TransactionType distinguishes money coming in from money going out. The
// amount is always stored positive; the sign is implied by the type.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single income or expense record owned by exactly one user.
type Transaction struct {
	ID          int             `json:"id"`
	UserID      int             `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        Date            `json:"date"`
}

/*
Mysql Schema:

CREATE TABLE transactions (
	id INT AUTO_INCREMENT PRIMARY KEY,
	user_id INT NOT NULL,
	amount DECIMAL(10,2) NOT NULL,
	type VARCHAR(10) NOT NULL,
	category VARCHAR(100) NOT NULL,
	description TEXT NULL,
	date DATE NOT NULL,
	KEY user_date_idx (user_id, date),
	FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);
*/
