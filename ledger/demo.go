package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/alovak/swift-alliance/ledger/models"
)

// SeedDemo loads the sample customers and accounts used by the demo
// frontends. Seeding an already-seeded repository is a no-op.
func SeedDemo(ctx context.Context, repo *Repository) error {
	customers := []*models.Customer{
		{ID: "CUST-0001", FirstName: "Alice", LastName: "Meyer"},
		{ID: "CUST-0002", FirstName: "Bruno", LastName: "Costa"},
	}
	accounts := []*models.Account{
		{AccountNumber: "DE89370400440532013000", AccountType: "checking", Currency: "EUR", Balance: 1_250_000, CustomerID: "CUST-0001"},
		{AccountNumber: "GB29NWBK60161331926819", AccountType: "savings", Currency: "GBP", Balance: 430_000, CustomerID: "CUST-0001"},
		{AccountNumber: "FR1420041010050500013M02606", AccountType: "checking", Currency: "USD", Balance: 98_000, CustomerID: "CUST-0002"},
	}

	for _, c := range customers {
		if err := repo.CreateCustomer(ctx, c); err != nil {
			if errors.Is(err, ErrConflict) {
				continue
			}
			return fmt.Errorf("seeding customer %s: %w", c.ID, err)
		}
	}
	for _, a := range accounts {
		if err := repo.CreateAccount(ctx, a); err != nil {
			if errors.Is(err, ErrConflict) {
				continue
			}
			return fmt.Errorf("seeding account %s: %w", a.AccountNumber, err)
		}
	}
	return nil
}
