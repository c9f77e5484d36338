package auth

// Provider validates bearer tokens presented to the API.
type Provider interface {
	ValidateToken(token string) error
}
