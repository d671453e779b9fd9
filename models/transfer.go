package models

// TransferScope selects the server area a chunked transfer targets.
type TransferScope string

const (
	// ScopeVault stores an item in the user's vault.
	ScopeVault TransferScope = "vault"
	// ScopeSend creates a link-shared item.
	ScopeSend TransferScope = "send"
)

// Prefix returns the URL prefix of the scope.
func (s TransferScope) Prefix() string {
	return "/api/" + string(s)
}

// Valid reports whether s is a known scope.
func (s TransferScope) Valid() bool {
	return s == ScopeVault || s == ScopeSend
}

// UploadMetadata is posted before any chunk of an item is uploaded.
type UploadMetadata struct {
	// Name is the hex encoding of the item name encrypted with the item key.
	Name string `json:"name"`
	// Chunks is the number of chunks that will follow.
	Chunks int `json:"chunks"`
	// Size is the plaintext size in bytes.
	Size int64 `json:"length"`
	// FolderID is the parent folder of a vault item.
	FolderID string `json:"folderID,omitempty"`
	// ProtectedKey is the item key wrapped under its parent key or the
	// owner's public key.
	ProtectedKey []byte `json:"protectedKey,omitempty"`
	// Salt is the PBKDF2 salt of a password-derived send key.
	Salt []byte `json:"salt,omitempty"`
	// Downloads limits how often a sent item can be fetched.
	Downloads int `json:"downloads,omitempty"`
	// Expiration is a server-side expiry string such as "1d".
	Expiration string `json:"expiration,omitempty"`
}

// MetadataUploadResponse carries the id assigned to a new item.
type MetadataUploadResponse struct {
	ID string `json:"id"`
}

// PlaintextUpload is a single-shot encrypted text send.
type PlaintextUpload struct {
	Name       string `json:"name"`
	Text       []byte `json:"data"`
	Salt       []byte `json:"salt"`
	Downloads  int    `json:"downloads"`
	Expiration string `json:"expiration"`
}

// ChunkResult is the outcome of one chunk upload.
type ChunkResult struct {
	// Chunk is the 1-based sequence number.
	Chunk int
	// Completion is the non-empty body the server returns once every chunk
	// of the item has been received.
	Completion string
}

// Done reports whether the server signalled overall completion.
func (c ChunkResult) Done() bool {
	return c.Completion != ""
}
