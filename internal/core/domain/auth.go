package domain

// Identity is the claim set extracted from a verified bearer token.
// Token issuance and verification internals belong to the identity
// provider; the core only consumes these claims.
type Identity struct {
	Subject string `json:"sub"` // stable unique subject identifier
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}
