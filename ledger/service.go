package ledger

import (
	"context"
	"fmt"

	"github.com/alovak/swift-alliance/ledger/models"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetAccount(ctx context.Context, accountNumber string) (*models.Account, error) {
	account, err := s.repo.GetAccount(ctx, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("finding account: %w", err)
	}
	return account, nil
}

func (s *Service) GetCustomer(ctx context.Context, customerID string) (*models.Customer, error) {
	customer, err := s.repo.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("finding customer: %w", err)
	}
	return customer, nil
}

func (s *Service) ListAccounts(ctx context.Context) ([]*models.Account, error) {
	accounts, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	return accounts, nil
}

// OrderingParty is the pre-filled ordering side of a payment form.
type OrderingParty struct {
	Name     string `json:"name"`
	Account  string `json:"account"`
	Currency string `json:"currency"`
}

// OrderingParty resolves an account to the default ordering fields for a new
// payment. The values are read once and discarded; the core never sees the
// ledger entities themselves.
func (s *Service) OrderingParty(ctx context.Context, accountNumber string) (OrderingParty, error) {
	account, err := s.repo.GetAccount(ctx, accountNumber)
	if err != nil {
		return OrderingParty{}, fmt.Errorf("finding account: %w", err)
	}
	customer, err := s.repo.GetCustomer(ctx, account.CustomerID)
	if err != nil {
		return OrderingParty{}, fmt.Errorf("finding customer: %w", err)
	}
	return OrderingParty{
		Name:     customer.FirstName + " " + customer.LastName,
		Account:  account.AccountNumber,
		Currency: account.Currency,
	}, nil
}
