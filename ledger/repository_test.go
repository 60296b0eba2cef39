package ledger_test

import (
	"context"
	"testing"

	"github.com/alovak/swift-alliance/ledger"
	"github.com/alovak/swift-alliance/ledger/models"
	"github.com/stretchr/testify/require"
)

func TestRepository_AccountsAndCustomers(t *testing.T) {
	ctx := context.Background()
	repo := ledger.NewRepository()

	customer := &models.Customer{ID: "CUST-1", FirstName: "Ada", LastName: "Byron"}
	require.NoError(t, repo.CreateCustomer(ctx, customer))

	account := &models.Account{
		AccountNumber: "NL91ABNA0417164300",
		AccountType:   "checking",
		Currency:      "EUR",
		Balance:       50_000,
		CustomerID:    "CUST-1",
	}
	require.NoError(t, repo.CreateAccount(ctx, account))

	got, err := repo.GetAccount(ctx, "NL91ABNA0417164300")
	require.NoError(t, err)
	require.Equal(t, account, got)

	_, err = repo.GetAccount(ctx, "missing")
	require.ErrorIs(t, err, ledger.ErrNotFound)

	require.ErrorIs(t, repo.CreateAccount(ctx, account), ledger.ErrConflict)
}

func TestService_OrderingParty(t *testing.T) {
	ctx := context.Background()
	repo := ledger.NewRepository()
	require.NoError(t, ledger.SeedDemo(ctx, repo))

	svc := ledger.NewService(repo)

	party, err := svc.OrderingParty(ctx, "DE89370400440532013000")
	require.NoError(t, err)
	require.Equal(t, "Alice Meyer", party.Name)
	require.Equal(t, "DE89370400440532013000", party.Account)
	require.Equal(t, "EUR", party.Currency)

	_, err = svc.OrderingParty(ctx, "unknown")
	require.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestSeedDemo_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := ledger.NewRepository()

	require.NoError(t, ledger.SeedDemo(ctx, repo))
	require.NoError(t, ledger.SeedDemo(ctx, repo))

	accounts, err := repo.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
}
