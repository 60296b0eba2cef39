package models

// Account is a ledger account as seen by the message workflow: enough to
// pre-fill the ordering side of a payment. Balance is kept in minor units.
type Account struct {
	AccountNumber string `json:"account_number"`
	AccountType   string `json:"account_type"`
	Currency      string `json:"currency"`
	Balance       int64  `json:"balance"`
	CustomerID    string `json:"customer_id"`
}

type Customer struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
