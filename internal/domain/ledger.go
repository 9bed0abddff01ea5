package domain

// LedgerState is everything the ledger persists. CurrentContact and Admin are
// empty when nobody is logged in.
type LedgerState struct {
	Users          []User
	CurrentContact string
	Admin          string
}
