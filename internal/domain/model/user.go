package model

// User represents an application login record. Accounts are provisioned
// out-of-band; there is no signup flow.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
}
