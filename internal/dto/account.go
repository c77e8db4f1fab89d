package dto

// TransferRequest asks to move money to another account. The amount is a
// decimal string; unparseable values are treated like any other invalid
// request and dropped.
type TransferRequest struct {
	To     string `json:"to" validate:"required,max=20"`
	Amount string `json:"amount" validate:"required,amount"`
}

// LoanRequest asks the bank for a loan.
type LoanRequest struct {
	Amount string `json:"amount" validate:"required,amount"`
}

// CloseRequest confirms account closure with the owner's credentials.
type CloseRequest struct {
	Username string `json:"username" validate:"required,max=20"`
	PIN      string `json:"pin" validate:"required,numeric"`
}

// MovementView is one row of the movements list. Index counts from 1 in the
// displayed order.
type MovementView struct {
	Index  int    `json:"index"`
	Type   string `json:"type"`
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

// SummaryView holds the derived account totals, formatted for display.
type SummaryView struct {
	Balance  string `json:"balance"`
	Income   string `json:"income"`
	Expense  string `json:"expense"`
	Interest string `json:"interest"`
}

// AccountView is the full authenticated view of an account.
type AccountView struct {
	Owner     string         `json:"owner"`
	Username  string         `json:"username"`
	Currency  string         `json:"currency"`
	Locale    string         `json:"locale"`
	Sorted    bool           `json:"sorted"`
	Movements []MovementView `json:"movements"`
	Summary   SummaryView    `json:"summary"`
	AsOf      string         `json:"as_of"`
}

// CountdownView reports the inactivity countdown. Display is the mm:ss form
// shown to the user; Remaining is the raw seconds.
type CountdownView struct {
	Display   string `json:"display"`
	Remaining int    `json:"remaining"`
}

// GenerateAccountsRequest asks the dev seeder for fake accounts.
type GenerateAccountsRequest struct {
	Count int `json:"count" validate:"required,min=1,max=50"`
}
