package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-zk-drive/internal/config"
	"github.com/MKhiriev/go-zk-drive/internal/logger"
	"github.com/MKhiriev/go-zk-drive/internal/utils"
	"github.com/MKhiriev/go-zk-drive/models"
	"github.com/go-resty/resty/v2"
)

const (
	loginPath     = "/api/login"
	registerPath  = "/api/register"
	logoutPath    = "/api/logout"
	sendTextPath  = "/api/send/plaintext"
	publicKeyPath = "/pubkey"
	sharePath     = "/api/share"

	contentTypeJSON   = "application/json"
	contentTypeBinary = "application/octet-stream"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	signer *utils.Signer

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. The base URL comes from adapterCfg.HTTPAddress (a missing
// scheme means http). When appCfg.HashKey is set every request body is signed
// with HMAC-SHA256 in the HashSHA256 header.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		signer: utils.NewSigner(appCfg.HashKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	r, err := h.jsonRequest(ctx, req)
	if err != nil {
		return err
	}

	resp, err := r.Post(registerPath)
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. The session token is read from the
// Authorization response header; servers that answer with a session cookie
// instead are supported through the first cookie's value.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, string, error) {
	var result models.LoginResponse

	r, err := h.jsonRequest(ctx, req)
	if err != nil {
		return models.LoginResponse{}, "", err
	}

	resp, err := r.SetResult(&result).Post(loginPath)
	if err != nil {
		return models.LoginResponse{}, "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		cookies := resp.Cookies()
		if len(cookies) == 0 || cookies[0].Value == "" {
			return models.LoginResponse{}, "", fmt.Errorf("login parse session token: %w", err)
		}
		token = cookies[0].Value
	}

	h.SetToken(token)
	return result, token, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post(logoutPath)
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) UploadMetadata(ctx context.Context, scope models.TransferScope, meta models.UploadMetadata) (string, error) {
	var result models.MetadataUploadResponse

	r, err := h.jsonRequest(ctx, meta)
	if err != nil {
		return "", err
	}

	resp, err := r.SetResult(&result).Post(scope.Prefix() + "/u")
	if err != nil {
		return "", fmt.Errorf("upload metadata request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if result.ID == "" {
		return "", fmt.Errorf("upload metadata: server returned no id")
	}

	return result.ID, nil
}

func (h *httpServerAdapter) UploadChunk(ctx context.Context, scope models.TransferScope, id string, n int, blob []byte) (models.ChunkResult, error) {
	resp, err := h.signedRequest(ctx, blob).
		SetHeader("Content-Type", contentTypeBinary).
		SetPathParams(map[string]string{"id": id, "chunk": strconv.Itoa(n)}).
		Post(scope.Prefix() + "/u/{id}/{chunk}")
	if err != nil {
		return models.ChunkResult{}, fmt.Errorf("upload chunk %d request: %w", n, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChunkResult{}, err
	}

	return models.ChunkResult{
		Chunk:      n,
		Completion: strings.TrimSpace(string(resp.Body())),
	}, nil
}

func (h *httpServerAdapter) DownloadChunk(ctx context.Context, scope models.TransferScope, id string, n int) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"id": id, "chunk": strconv.Itoa(n)}).
		Get(scope.Prefix() + "/d/{id}/{chunk}")
	if err != nil {
		return nil, fmt.Errorf("download chunk %d request: %w", n, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpServerAdapter) UploadText(ctx context.Context, req models.PlaintextUpload) (string, error) {
	var result models.MetadataUploadResponse

	r, err := h.jsonRequest(ctx, req)
	if err != nil {
		return "", err
	}

	resp, err := r.SetResult(&result).Post(sendTextPath)
	if err != nil {
		return "", fmt.Errorf("upload text request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.ID, nil
}

func (h *httpServerAdapter) GetPublicKey(ctx context.Context, user string) ([]byte, error) {
	var result models.PublicKeyResponse

	resp, err := h.authedRequest(ctx).
		SetQueryParam("user", user).
		SetResult(&result).
		Get(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("public key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.PublicKey, nil
}

func (h *httpServerAdapter) CreateShare(ctx context.Context, kind models.ItemKind, itemID string, req models.NewShareRequest) (models.ShareGrant, error) {
	var grant models.ShareGrant

	r, err := h.jsonRequest(ctx, req)
	if err != nil {
		return models.ShareGrant{}, err
	}

	resp, err := r.SetResult(&grant).Post(shareURL(kind, itemID))
	if err != nil {
		return models.ShareGrant{}, fmt.Errorf("create share request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ShareGrant{}, err
	}

	return grant, nil
}

func (h *httpServerAdapter) UpdateShare(ctx context.Context, kind models.ItemKind, itemID string, edit models.ShareEdit) error {
	r, err := h.jsonRequest(ctx, edit)
	if err != nil {
		return err
	}

	resp, err := r.Put(shareURL(kind, itemID))
	if err != nil {
		return fmt.Errorf("update share request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteShare(ctx context.Context, kind models.ItemKind, itemID, grantID string) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("id", grantID).
		Delete(shareURL(kind, itemID))
	if err != nil {
		return fmt.Errorf("delete share request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListShares(ctx context.Context, kind models.ItemKind, itemID string) ([]models.ShareGrant, error) {
	var grants []models.ShareGrant

	resp, err := h.authedRequest(ctx).
		SetResult(&grants).
		Get(shareURL(kind, itemID))
	if err != nil {
		return nil, fmt.Errorf("list shares request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return grants, nil
}

func shareURL(kind models.ItemKind, itemID string) string {
	return sharePath + "/" + string(kind) + "/" + url.PathEscape(itemID)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// signedRequest attaches body and, when signing is enabled, its HMAC.
func (h *httpServerAdapter) signedRequest(ctx context.Context, body []byte) *resty.Request {
	req := h.authedRequest(ctx).SetBody(body)
	if sig := h.signer.Sign(body); sig != "" {
		req.SetHeader(utils.HashHeader, sig)
	}
	return req
}

func (h *httpServerAdapter) jsonRequest(ctx context.Context, v any) (*resty.Request, error) {
	body, err := json.Marshal(v)
	if err != nil {
		h.logger.Err(err).Str("func", "httpServerAdapter.jsonRequest").Msg("failed to encode request body")
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	return h.signedRequest(ctx, body).
		SetHeader("Content-Type", contentTypeJSON).
		SetHeader("Accept", contentTypeJSON), nil
}

