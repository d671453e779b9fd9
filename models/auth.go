package models

// LoginRequest carries the identifier and the login proof. The server never
// sees the password or the account key.
type LoginRequest struct {
	Identifier   string `json:"identifier"`
	LoginKeyHash []byte `json:"loginKeyHash"`
}

// LoginResponse returns the identity key pair with the private key wrapped
// under the account key.
type LoginResponse struct {
	ProtectedKey []byte `json:"protectedKey"`
	PublicKey    []byte `json:"publicKey"`
}

// RegisterRequest creates an account.
type RegisterRequest struct {
	Identifier   string `json:"identifier"`
	LoginKeyHash []byte `json:"loginKeyHash"`
	ProtectedKey []byte `json:"protectedKey"`
	PublicKey    []byte `json:"publicKey"`
}
