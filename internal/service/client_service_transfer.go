package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/MKhiriev/go-zk-drive/internal/adapter"
	"github.com/MKhiriev/go-zk-drive/internal/app"
	"github.com/MKhiriev/go-zk-drive/internal/crypto"
	"github.com/MKhiriev/go-zk-drive/internal/logger"
	"github.com/MKhiriev/go-zk-drive/models"
)

type clientTransferService struct {
	adapter   adapter.ServerAdapter
	chunkSize int
	logger    *logger.Logger
}

// NewClientTransferService builds a [TransferService] that splits items into
// chunks of chunkSize plaintext bytes.
func NewClientTransferService(serverAdapter adapter.ServerAdapter, chunkSize int, logger *logger.Logger) TransferService {
	return &clientTransferService{adapter: serverAdapter, chunkSize: chunkSize, logger: logger}
}

// ChunkCount returns ceil(size / chunkSize). An empty item is still sent as
// one empty chunk.
func (t *clientTransferService) ChunkCount(size int64) int {
	if size <= 0 {
		return 1
	}
	c := int64(t.chunkSize)
	return int((size + c - 1) / c)
}

func (t *clientTransferService) Upload(ctx context.Context, req UploadRequest) (string, error) {
	if !req.Scope.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidScope, req.Scope)
	}

	name, err := encryptName(req.ItemKey, req.Name)
	if err != nil {
		return "", err
	}

	chunks := t.ChunkCount(req.Size)
	meta := req.Meta
	meta.Name = name
	meta.Chunks = chunks
	meta.Size = req.Size

	log := logger.FromContext(ctx)
	id, err := t.adapter.UploadMetadata(ctx, req.Scope, meta)
	if err != nil {
		log.Err(err).Str("func", "clientTransferService.Upload").Msg("metadata upload failed")
		return "", newTransferError(err)
	}

	buf := make([]byte, t.chunkSize)
	remaining := req.Size
	for n := 1; n <= chunks; n++ {
		if err = ctx.Err(); err != nil {
			return "", newTransferError(err)
		}

		want := min(remaining, int64(t.chunkSize))
		if _, err = io.ReadFull(req.Body, buf[:want]); err != nil {
			return "", &TransferError{Message: fmt.Sprintf("read chunk %d: %v", n, err), err: err}
		}
		remaining -= want

		blob, err := crypto.EncryptChunk(req.ItemKey, buf[:want])
		if err != nil {
			return "", err
		}

		res, err := t.adapter.UploadChunk(ctx, req.Scope, id, n, blob)
		if err != nil {
			log.Err(err).Str("func", "clientTransferService.Upload").Int("chunk", n).Msg("chunk upload failed")
			return "", newTransferError(err)
		}

		if req.Progress != nil {
			req.Progress(n, chunks)
		}

		if res.Done() {
			log.Debug().Str("id", id).Int("chunks", n).Msg("upload complete")
			return res.Completion, nil
		}
	}

	return "", &TransferError{Message: app.MsgUploadIncomplete}
}

func (t *clientTransferService) Download(ctx context.Context, req DownloadRequest, w io.Writer) error {
	if !req.Scope.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidScope, req.Scope)
	}
	if req.Chunks < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidChunkCount, req.Chunks)
	}

	log := logger.FromContext(ctx)
	for n := 1; n <= req.Chunks; n++ {
		if err := ctx.Err(); err != nil {
			return newTransferError(err)
		}

		blob, err := t.adapter.DownloadChunk(ctx, req.Scope, req.ID, n)
		if err != nil {
			log.Err(err).Str("func", "clientTransferService.Download").Int("chunk", n).Msg("chunk download failed")
			return newTransferError(err)
		}

		plaintext, err := crypto.DecryptChunk(req.ItemKey, blob)
		if err != nil {
			return fmt.Errorf("chunk %d: %w", n, err)
		}

		if _, err = w.Write(plaintext); err != nil {
			return fmt.Errorf("write chunk %d: %w", n, err)
		}

		if req.Progress != nil {
			req.Progress(n, req.Chunks)
		}
	}

	return nil
}

func (t *clientTransferService) UploadText(ctx context.Context, req TextRequest) (string, error) {
	name, err := encryptName(req.Key, req.Name)
	if err != nil {
		return "", err
	}

	text, err := crypto.EncryptChunk(req.Key, []byte(req.Text))
	if err != nil {
		return "", err
	}

	id, err := t.adapter.UploadText(ctx, models.PlaintextUpload{
		Name:       name,
		Text:       text,
		Salt:       req.Salt,
		Downloads:  req.Downloads,
		Expiration: req.Expiration,
	})
	if err != nil {
		return "", newTransferError(err)
	}

	return id, nil
}

func (t *clientTransferService) DecryptName(key []byte, hexName string) (string, error) {
	blob, err := hex.DecodeString(hexName)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidName, err)
	}

	name, err := crypto.DecryptChunk(key, blob)
	if err != nil {
		return "", err
	}

	return string(name), nil
}

func encryptName(key []byte, name string) (string, error) {
	blob, err := crypto.EncryptChunk(key, []byte(name))
	if err != nil {
		return "", fmt.Errorf("encrypt name: %w", err)
	}
	return hex.EncodeToString(blob), nil
}
