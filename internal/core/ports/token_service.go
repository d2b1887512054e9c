package ports

// IdentityClaim is the identity payload embedded in a signed session token.
// The token service vouches only that it was not tampered with and has not
// expired, not that the email is true.
type IdentityClaim struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	Issue(claim IdentityClaim) (string, error)
	Verify(token string) (*IdentityClaim, error)
}
