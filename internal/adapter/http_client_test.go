package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-zk-drive/internal/config"
	"github.com/MKhiriev/go-zk-drive/internal/logger"
	"github.com/MKhiriev/go-zk-drive/internal/utils"
	"github.com/MKhiriev/go-zk-drive/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, h http.HandlerFunc, hashKey string) (*httpServerAdapter, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(
		config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second},
		config.ClientApp{HashKey: hashKey},
		logger.Nop(),
	)
	require.NoError(t, err)
	return a.(*httpServerAdapter), srv
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8090", want: "http://localhost:8090"},
		{in: "https://drive.example.com/", want: "https://drive.example.com"},
		{in: "  http://127.0.0.1:1  ", want: "http://127.0.0.1:1"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestMapHTTPError_Sentinels(t *testing.T) {
	codes := map[int]error{
		http.StatusBadRequest:          ErrBadRequest,
		http.StatusUnauthorized:        ErrUnauthorized,
		http.StatusForbidden:           ErrForbidden,
		http.StatusNotFound:            ErrNotFound,
		http.StatusConflict:            ErrConflict,
		http.StatusBadGateway:          ErrBadGateway,
		http.StatusInternalServerError: ErrInternalServerError,
	}

	for code, sentinel := range codes {
		a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "  reason  ", code)
		}, "")

		_, err := a.DownloadChunk(context.Background(), models.ScopeVault, "id", 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, sentinel)

		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, code, se.StatusCode)
		assert.Equal(t, "reason", se.Body)
	}
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}, "")

	_, err := a.DownloadChunk(context.Background(), models.ScopeVault, "id", 1)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusTeapot, se.StatusCode)
	assert.Equal(t, http.StatusText(http.StatusTeapot), se.Body)
	assert.Nil(t, se.Unwrap())
}

func TestLogin_StoresBearerToken(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "user@example.com", req.Identifier)
		assert.Equal(t, []byte{1, 2, 3}, req.LoginKeyHash)

		w.Header().Set("Authorization", "Bearer tok-1")
		writeJSON(t, w, http.StatusOK, models.LoginResponse{ProtectedKey: []byte("wrapped"), PublicKey: []byte("pub")})
	}, "")

	resp, token, err := a.Login(context.Background(), models.LoginRequest{Identifier: "user@example.com", LoginKeyHash: []byte{1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, "tok-1", a.Token())
	assert.Equal(t, []byte("wrapped"), resp.ProtectedKey)
	assert.Equal(t, []byte("pub"), resp.PublicKey)
}

func TestLogin_SessionCookie(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "cookie-token"})
		writeJSON(t, w, http.StatusOK, models.LoginResponse{})
	}, "")

	_, token, err := a.Login(context.Background(), models.LoginRequest{Identifier: "u"})
	require.NoError(t, err)
	assert.Equal(t, "cookie-token", token)
}

func TestLogin_NoToken(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.LoginResponse{})
	}, "")

	_, _, err := a.Login(context.Background(), models.LoginRequest{Identifier: "u"})
	assert.Error(t, err)
	assert.Empty(t, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}, "")

	_, _, err := a.Login(context.Background(), models.LoginRequest{Identifier: "u"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogout_ClearsToken(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/logout", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}, "")
	a.SetToken(" tok ")

	require.NoError(t, a.Logout(context.Background()))
	assert.Empty(t, a.Token())
}

func TestRegister(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/register", r.URL.Path)
		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []byte("pub"), req.PublicKey)
		w.WriteHeader(http.StatusCreated)
	}, "")

	require.NoError(t, a.Register(context.Background(), models.RegisterRequest{Identifier: "u", PublicKey: []byte("pub")}))
}

func TestRegister_Conflict(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "exists", http.StatusConflict)
	}, "")

	assert.ErrorIs(t, a.Register(context.Background(), models.RegisterRequest{}), ErrConflict)
}

func TestUploadMetadata_ScopedPath(t *testing.T) {
	for _, scope := range []models.TransferScope{models.ScopeVault, models.ScopeSend} {
		a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, scope.Prefix()+"/u", r.URL.Path)

			var meta models.UploadMetadata
			require.NoError(t, json.NewDecoder(r.Body).Decode(&meta))
			assert.Equal(t, 3, meta.Chunks)
			assert.Equal(t, int64(42), meta.Size)

			writeJSON(t, w, http.StatusOK, models.MetadataUploadResponse{ID: "item-1"})
		}, "")

		id, err := a.UploadMetadata(context.Background(), scope, models.UploadMetadata{Name: "ab", Chunks: 3, Size: 42})
		require.NoError(t, err)
		assert.Equal(t, "item-1", id)
	}
}

func TestUploadMetadata_MissingID(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{})
	}, "")

	_, err := a.UploadMetadata(context.Background(), models.ScopeVault, models.UploadMetadata{})
	assert.Error(t, err)
}

func TestUploadChunk_RawBodyAndSignature(t *testing.T) {
	signer := utils.NewSigner("hmac-key")
	blob := []byte{0xde, 0xad, 0xbe, 0xef}

	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/vault/u/item-1/2", r.URL.Path)
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get(utils.RequestIDHeader))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, blob, body)
		assert.True(t, signer.Verify(body, r.Header.Get(utils.HashHeader)))

		_, _ = w.Write([]byte("  done-id\n"))
	}, "hmac-key")

	res, err := a.UploadChunk(context.Background(), models.ScopeVault, "item-1", 2, blob)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Chunk)
	assert.Equal(t, "done-id", res.Completion)
	assert.True(t, res.Done())
}

func TestUploadChunk_EmptyBodyNotDone(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(utils.HashHeader))
		w.WriteHeader(http.StatusOK)
	}, "")

	res, err := a.UploadChunk(context.Background(), models.ScopeSend, "x", 1, []byte("c"))
	require.NoError(t, err)
	assert.False(t, res.Done())
}

func TestDownloadChunk(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/send/d/item-9/3", r.URL.Path)
		_, _ = w.Write([]byte{9, 8, 7})
	}, "")

	blob, err := a.DownloadChunk(context.Background(), models.ScopeSend, "item-9", 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 8, 7}, blob)
}

func TestUploadText(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/send/plaintext", r.URL.Path)
		var req models.PlaintextUpload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 2, req.Downloads)
		writeJSON(t, w, http.StatusOK, models.MetadataUploadResponse{ID: "txt-1"})
	}, "")

	id, err := a.UploadText(context.Background(), models.PlaintextUpload{Downloads: 2})
	require.NoError(t, err)
	assert.Equal(t, "txt-1", id)
}

func TestGetPublicKey(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pubkey", r.URL.Path)
		if r.URL.Query().Get("user") != "bob@example.com" {
			http.Error(w, "no such user", http.StatusNotFound)
			return
		}
		writeJSON(t, w, http.StatusOK, models.PublicKeyResponse{PublicKey: []byte("bob-pub")})
	}, "")

	key, err := a.GetPublicKey(context.Background(), "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, []byte("bob-pub"), key)

	_, err = a.GetPublicKey(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestShareCRUD(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/share/folder/f-1", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		switch r.Method {
		case http.MethodPost:
			var req models.NewShareRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "bob", req.User)
			assert.True(t, req.CanModify)
			writeJSON(t, w, http.StatusOK, models.ShareGrant{ID: "g-1", ItemID: "f-1", Recipient: "bob", CanModify: true})
		case http.MethodPut:
			var edit models.ShareEdit
			require.NoError(t, json.NewDecoder(r.Body).Decode(&edit))
			assert.Equal(t, models.ShareEdit{ID: "g-1", ItemID: "f-1", CanModify: false}, edit)
			w.WriteHeader(http.StatusOK)
		case http.MethodDelete:
			assert.Equal(t, "g-1", r.URL.Query().Get("id"))
			w.WriteHeader(http.StatusOK)
		case http.MethodGet:
			writeJSON(t, w, http.StatusOK, []models.ShareGrant{{ID: "g-1", Recipient: "bob"}})
		}
	}, "")
	a.SetToken("tok")
	ctx := context.Background()

	grant, err := a.CreateShare(ctx, models.ItemFolder, "f-1", models.NewShareRequest{User: "bob", ProtectedKey: []byte("k"), CanModify: true})
	require.NoError(t, err)
	assert.Equal(t, "g-1", grant.ID)

	require.NoError(t, a.UpdateShare(ctx, models.ItemFolder, "f-1", models.ShareEdit{ID: "g-1", ItemID: "f-1"}))
	require.NoError(t, a.DeleteShare(ctx, models.ItemFolder, "f-1", "g-1"))

	grants, err := a.ListShares(ctx, models.ItemFolder, "f-1")
	require.NoError(t, err)
	require.Len(t, grants, 1)
	assert.Equal(t, "bob", grants[0].Recipient)
}

func TestShareURL_EscapesID(t *testing.T) {
	assert.Equal(t, "/api/share/file/a%2Fb", shareURL(models.ItemFile, "a/b"))
}
