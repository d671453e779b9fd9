package models

// ItemKind distinguishes files from folders in share endpoints.
type ItemKind string

const (
	ItemFile   ItemKind = "file"
	ItemFolder ItemKind = "folder"
)

// Valid reports whether k is a known kind.
func (k ItemKind) Valid() bool {
	return k == ItemFile || k == ItemFolder
}

// ShareGrant is one recipient's access to an item.
type ShareGrant struct {
	// ID is the server-assigned grant identifier.
	ID string `json:"id"`
	// ItemID is the shared file or folder.
	ItemID string `json:"itemID"`
	// Recipient is the recipient's identifier (email or account id).
	Recipient string `json:"recipient"`
	// ProtectedKey is the item key wrapped under the recipient's public key.
	ProtectedKey []byte `json:"protectedKey,omitempty"`
	// CanModify allows the recipient to change the item.
	CanModify bool `json:"canModify"`
}

// NewShareRequest is posted to create a grant.
type NewShareRequest struct {
	User         string `json:"user"`
	ProtectedKey []byte `json:"protectedKey"`
	CanModify    bool   `json:"canModify"`
}

// ShareEdit is sent to change a grant's permissions.
type ShareEdit struct {
	ID        string `json:"id"`
	ItemID    string `json:"itemID"`
	CanModify bool   `json:"canModify"`
}

// PublicKeyResponse carries a recipient's SPKI DER public key.
type PublicKeyResponse struct {
	PublicKey []byte `json:"publicKey"`
}
