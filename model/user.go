package model

// Identity is an authenticated user as reported by the auth provider.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
