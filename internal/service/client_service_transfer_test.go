package service

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-zk-drive/internal/adapter"
	"github.com/MKhiriev/go-zk-drive/internal/crypto"
	"github.com/MKhiriev/go-zk-drive/internal/logger"
	"github.com/MKhiriev/go-zk-drive/internal/mock"
	"github.com/MKhiriev/go-zk-drive/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testChunkSize = 10

func newTestTransferSvc(t *testing.T, ctrl *gomock.Controller) (*clientTransferService, *mock.MockServerAdapter) {
	t.Helper()
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientTransferService(serverAdapter, testChunkSize, logger.Nop()).(*clientTransferService)
	return svc, serverAdapter
}

func testItemKey(t *testing.T) []byte {
	t.Helper()
	key, err := crypto.RandomBytes(crypto.KeySize)
	require.NoError(t, err)
	return key
}

func TestClientTransferService_ChunkCount(t *testing.T) {
	svc := &clientTransferService{chunkSize: testChunkSize}

	tests := []struct {
		size int64
		want int
	}{
		{size: 0, want: 1},
		{size: 1, want: 1},
		{size: 10, want: 1},
		{size: 11, want: 2},
		{size: 25, want: 3},
		{size: 30, want: 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, svc.ChunkCount(tt.size), "size %d", tt.size)
	}
}

func TestClientTransferService_Upload_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter := newTestTransferSvc(t, ctrl)
	ctx := context.Background()
	key := testItemKey(t)

	payload := []byte("0123456789abcdefghijKLMNO")

	serverAdapter.EXPECT().UploadMetadata(ctx, models.ScopeVault, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.TransferScope, meta models.UploadMetadata) (string, error) {
			assert.Equal(t, 3, meta.Chunks)
			assert.Equal(t, int64(len(payload)), meta.Size)
			assert.Equal(t, "folder-1", meta.FolderID)

			name, err := svc.DecryptName(key, meta.Name)
			require.NoError(t, err)
			assert.Equal(t, "notes.txt", name)
			return "item-1", nil
		})

	var received [][]byte
	var order []int
	serverAdapter.EXPECT().UploadChunk(ctx, models.ScopeVault, "item-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.TransferScope, _ string, n int, blob []byte) (models.ChunkResult, error) {
			order = append(order, n)
			received = append(received, bytes.Clone(blob))
			if n == 3 {
				return models.ChunkResult{Chunk: n, Completion: "item-1"}, nil
			}
			return models.ChunkResult{Chunk: n}, nil
		}).Times(3)

	var progress []int
	done, err := svc.Upload(ctx, UploadRequest{
		Scope:    models.ScopeVault,
		Name:     "notes.txt",
		Body:     bytes.NewReader(payload),
		Size:     int64(len(payload)),
		ItemKey:  key,
		Meta:     models.UploadMetadata{FolderID: "folder-1"},
		Progress: func(n, total int) { progress = append(progress, n*100+total) },
	})
	require.NoError(t, err)
	assert.Equal(t, "item-1", done)
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, []int{103, 203, 303}, progress)

	var joined []byte
	for i, blob := range received {
		plain, err := crypto.DecryptChunk(key, blob)
		require.NoError(t, err, "chunk %d", i+1)
		joined = append(joined, plain...)
	}
	assert.Equal(t, payload, joined)
	assert.Len(t, received[2], 5+crypto.TotalOverhead)
}

func TestClientTransferService_Upload_EmptyFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter := newTestTransferSvc(t, ctrl)
	ctx := context.Background()
	key := testItemKey(t)

	serverAdapter.EXPECT().UploadMetadata(ctx, models.ScopeSend, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.TransferScope, meta models.UploadMetadata) (string, error) {
			assert.Equal(t, 1, meta.Chunks)
			assert.Zero(t, meta.Size)
			return "empty", nil
		})
	serverAdapter.EXPECT().UploadChunk(ctx, models.ScopeSend, "empty", 1, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.TransferScope, _ string, _ int, blob []byte) (models.ChunkResult, error) {
			assert.Len(t, blob, crypto.TotalOverhead)
			return models.ChunkResult{Chunk: 1, Completion: "ok"}, nil
		})

	done, err := svc.Upload(ctx, UploadRequest{Scope: models.ScopeSend, Name: "empty", Body: strings.NewReader(""), ItemKey: key})
	require.NoError(t, err)
	assert.Equal(t, "ok", done)
}

func TestClientTransferService_Upload_NoCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter := newTestTransferSvc(t, ctrl)
	ctx := context.Background()

	serverAdapter.EXPECT().UploadMetadata(ctx, gomock.Any(), gomock.Any()).Return("id", nil)
	serverAdapter.EXPECT().UploadChunk(ctx, gomock.Any(), "id", gomock.Any(), gomock.Any()).
		Return(models.ChunkResult{}, nil).Times(2)

	_, err := svc.Upload(ctx, UploadRequest{
		Scope:   models.ScopeVault,
		Name:    "x",
		Body:    bytes.NewReader(make([]byte, 15)),
		Size:    15,
		ItemKey: testItemKey(t),
	})

	var te *TransferError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "upload did not complete", te.Message)
}

func TestClientTransferService_Upload_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter := newTestTransferSvc(t, ctrl)
	ctx := context.Background()

	serverAdapter.EXPECT().UploadMetadata(ctx, gomock.Any(), gomock.Any()).Return("id", nil)
	serverAdapter.EXPECT().UploadChunk(ctx, gomock.Any(), "id", 1, gomock.Any()).
		Return(models.ChunkResult{}, adapter.NewStatusError(http.StatusRequestEntityTooLarge, "too large"))

	_, err := svc.Upload(ctx, UploadRequest{
		Scope:   models.ScopeVault,
		Name:    "x",
		Body:    bytes.NewReader(make([]byte, 25)),
		Size:    25,
		ItemKey: testItemKey(t),
	})

	var te *TransferError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusRequestEntityTooLarge, te.Status)
	assert.Equal(t, "too large", te.Message)
}

func TestClientTransferService_Upload_MetadataError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter := newTestTransferSvc(t, ctrl)
	ctx := context.Background()

	serverAdapter.EXPECT().UploadMetadata(ctx, gomock.Any(), gomock.Any()).Return("", errors.New("connection reset"))

	_, err := svc.Upload(ctx, UploadRequest{Scope: models.ScopeVault, Body: strings.NewReader("a"), Size: 1, ItemKey: testItemKey(t)})

	var te *TransferError
	require.ErrorAs(t, err, &te)
	assert.Zero(t, te.Status)
}

func TestClientTransferService_Upload_ShortBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter := newTestTransferSvc(t, ctrl)
	ctx := context.Background()

	serverAdapter.EXPECT().UploadMetadata(ctx, gomock.Any(), gomock.Any()).Return("id", nil)

	_, err := svc.Upload(ctx, UploadRequest{Scope: models.ScopeVault, Body: strings.NewReader("abc"), Size: 8, ItemKey: testItemKey(t)})

	var te *TransferError
	assert.ErrorAs(t, err, &te)
}

func TestClientTransferService_InvalidScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestTransferSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Upload(ctx, UploadRequest{Scope: "public", Body: strings.NewReader("")})
	assert.ErrorIs(t, err, ErrInvalidScope)

	err = svc.Download(ctx, DownloadRequest{Scope: "public", Chunks: 1}, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrInvalidScope)

	err = svc.Download(ctx, DownloadRequest{Scope: models.ScopeVault, Chunks: 0}, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrInvalidChunkCount)
}

func encryptChunks(t *testing.T, key []byte, parts ...string) [][]byte {
	t.Helper()
	blobs := make([][]byte, 0, len(parts))
	for _, p := range parts {
		blob, err := crypto.EncryptChunk(key, []byte(p))
		require.NoError(t, err)
		blobs = append(blobs, blob)
	}
	return blobs
}

func TestClientTransferService_Download_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter := newTestTransferSvc(t, ctrl)
	ctx := context.Background()
	key := testItemKey(t)
	blobs := encryptChunks(t, key, "0123456789", "abcdefghij", "KLMNO")

	gomock.InOrder(
		serverAdapter.EXPECT().DownloadChunk(ctx, models.ScopeSend, "item", 1).Return(blobs[0], nil),
		serverAdapter.EXPECT().DownloadChunk(ctx, models.ScopeSend, "item", 2).Return(blobs[1], nil),
		serverAdapter.EXPECT().DownloadChunk(ctx, models.ScopeSend, "item", 3).Return(blobs[2], nil),
	)

	var out bytes.Buffer
	var calls int
	err := svc.Download(ctx, DownloadRequest{
		Scope:    models.ScopeSend,
		ID:       "item",
		Chunks:   3,
		ItemKey:  key,
		Progress: func(int, int) { calls++ },
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdefghijKLMNO", out.String())
	assert.Equal(t, 3, calls)
}

func TestClientTransferService_Download_TamperedChunkNotWritten(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter := newTestTransferSvc(t, ctrl)
	ctx := context.Background()
	key := testItemKey(t)
	blobs := encryptChunks(t, key, "first part", "second")
	blobs[1][crypto.NonceSize] ^= 0x01

	serverAdapter.EXPECT().DownloadChunk(ctx, models.ScopeVault, "item", 1).Return(blobs[0], nil)
	serverAdapter.EXPECT().DownloadChunk(ctx, models.ScopeVault, "item", 2).Return(blobs[1], nil)

	var out bytes.Buffer
	err := svc.Download(ctx, DownloadRequest{Scope: models.ScopeVault, ID: "item", Chunks: 2, ItemKey: key}, &out)
	assert.ErrorIs(t, err, crypto.ErrAuthentication)
	assert.Equal(t, "first part", out.String())
}

func TestClientTransferService_Download_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter := newTestTransferSvc(t, ctrl)
	ctx := context.Background()

	serverAdapter.EXPECT().DownloadChunk(ctx, models.ScopeVault, "gone", 1).
		Return(nil, adapter.NewStatusError(http.StatusNotFound, "no such item"))

	err := svc.Download(ctx, DownloadRequest{Scope: models.ScopeVault, ID: "gone", Chunks: 1, ItemKey: testItemKey(t)}, &bytes.Buffer{})

	var te *TransferError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusNotFound, te.Status)
}

func TestClientTransferService_Download_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestTransferSvc(t, ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Download(ctx, DownloadRequest{Scope: models.ScopeVault, ID: "x", Chunks: 2, ItemKey: testItemKey(t)}, &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClientTransferService_UploadText(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter := newTestTransferSvc(t, ctrl)
	ctx := context.Background()
	key := testItemKey(t)

	serverAdapter.EXPECT().UploadText(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, req models.PlaintextUpload) (string, error) {
		text, err := crypto.DecryptChunk(key, req.Text)
		require.NoError(t, err)
		assert.Equal(t, "meet at noon", string(text))
		assert.Equal(t, 3, req.Downloads)
		assert.Equal(t, "1d", req.Expiration)

		name, err := svc.DecryptName(key, req.Name)
		require.NoError(t, err)
		assert.Equal(t, "memo", name)
		return "text-1", nil
	})

	id, err := svc.UploadText(ctx, TextRequest{Key: key, Name: "memo", Text: "meet at noon", Downloads: 3, Expiration: "1d"})
	require.NoError(t, err)
	assert.Equal(t, "text-1", id)
}

func TestClientTransferService_DecryptName_Errors(t *testing.T) {
	svc := &clientTransferService{chunkSize: testChunkSize}
	key := testItemKey(t)

	_, err := svc.DecryptName(key, "not hex")
	assert.ErrorIs(t, err, ErrInvalidName)

	hexName, err := encryptName(key, "secret.pdf")
	require.NoError(t, err)
	_, err = svc.DecryptName(testItemKey(t), hexName)
	assert.ErrorIs(t, err, crypto.ErrAuthentication)
}
