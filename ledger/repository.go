// Package ledger is the read-only account/customer store the message
// workflow consults to pre-fill ordering-party fields. The core codecs never
// touch it; it is injected into whatever composes the Payment.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/alovak/swift-alliance/ledger/models"
	"github.com/jackc/pgconn"
	"github.com/lib/pq"
)

var (
	ErrNotFound = fmt.Errorf("not found")
	ErrConflict = fmt.Errorf("conflict")
)

// Repository stores accounts and customers either in memory or in Postgres.
// The message workflow only reads from it; the write path exists for demo
// seeding and operator tooling.
type Repository struct {
	mu        sync.RWMutex
	accounts  map[string]*models.Account
	customers map[string]*models.Customer

	db *sql.DB
}

func NewRepository() *Repository {
	return &Repository{
		accounts:  make(map[string]*models.Account),
		customers: make(map[string]*models.Customer),
	}
}

// NewPGRepository constructs a db-backed repository.
func NewPGRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	if r.db == nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		if _, ok := r.customers[customer.ID]; ok {
			return fmt.Errorf("customer %s exists: %w", customer.ID, ErrConflict)
		}
		r.customers[customer.ID] = customer
		return nil
	}
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO alliance.customers(customer_id, first_name, last_name)
        VALUES ($1,$2,$3)
    `, customer.ID, customer.FirstName, customer.LastName)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (r *Repository) CreateAccount(ctx context.Context, account *models.Account) error {
	if r.db == nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		if _, ok := r.accounts[account.AccountNumber]; ok {
			return fmt.Errorf("account %s exists: %w", account.AccountNumber, ErrConflict)
		}
		r.accounts[account.AccountNumber] = account
		return nil
	}
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO alliance.accounts(account_number, account_type, currency, balance, customer_id)
        VALUES ($1,$2,$3,$4,$5)
    `, account.AccountNumber, account.AccountType, strings.ToUpper(account.Currency), account.Balance, account.CustomerID)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (r *Repository) GetAccount(ctx context.Context, accountNumber string) (*models.Account, error) {
	if r.db == nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		if account, ok := r.accounts[accountNumber]; ok {
			return account, nil
		}
		return nil, ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `
        SELECT account_number, account_type, currency, balance, customer_id
          FROM alliance.accounts WHERE account_number=$1
    `, accountNumber)
	var a models.Account
	if err := row.Scan(&a.AccountNumber, &a.AccountType, &a.Currency, &a.Balance, &a.CustomerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *Repository) GetCustomer(ctx context.Context, customerID string) (*models.Customer, error) {
	if r.db == nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		if customer, ok := r.customers[customerID]; ok {
			return customer, nil
		}
		return nil, ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `
        SELECT customer_id, first_name, last_name FROM alliance.customers WHERE customer_id=$1
    `, customerID)
	var c models.Customer
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ListAccounts returns all accounts ordered by account number.
func (r *Repository) ListAccounts(ctx context.Context) ([]*models.Account, error) {
	if r.db == nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		out := make([]*models.Account, 0, len(r.accounts))
		for _, a := range r.accounts {
			out = append(out, a)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].AccountNumber < out[j].AccountNumber })
		return out, nil
	}
	rows, err := r.db.QueryContext(ctx, `
        SELECT account_number, account_type, currency, balance, customer_id
          FROM alliance.accounts ORDER BY account_number
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.AccountNumber, &a.AccountType, &a.Currency, &a.Balance, &a.CustomerID); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

// Ping returns DB readiness
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	return r.db.PingContext(ctx)
}

func isUniqueViolation(err error) bool {
	var pe *pq.Error
	if errors.As(err, &pe) && pe.Code == "23505" {
		return true
	}
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) && pgerr.Code == "23505" {
		return true
	}
	return false
}
