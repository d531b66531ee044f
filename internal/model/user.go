package model

// User is the subset of an account record needed to authenticate.
// Accounts are registered elsewhere; this service only reads them.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
