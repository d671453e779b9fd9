package service

import (
	"github.com/MKhiriev/go-zk-drive/internal/adapter"
	"github.com/MKhiriev/go-zk-drive/internal/config"
	"github.com/MKhiriev/go-zk-drive/internal/crypto"
	"github.com/MKhiriev/go-zk-drive/internal/logger"
	"github.com/MKhiriev/go-zk-drive/internal/store"
)

type ClientServices struct {
	VaultService    VaultService
	AuthService     AuthService
	TransferService TransferService
	ShareService    ShareService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, keyChain crypto.KeyChainService, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	vaultSvc := NewVaultService(localStore.Vault, localStore.Wordlists, keyChain, cfg.Vault.MinPasswordScore, logger)

	return &ClientServices{
		VaultService:    vaultSvc,
		AuthService:     NewClientAuthService(serverAdapter, keyChain, vaultSvc, localStore.Sessions, logger),
		TransferService: NewClientTransferService(serverAdapter, cfg.Crypto.ChunkSize, logger),
		ShareService:    NewClientShareService(serverAdapter, keyChain, logger),
	}
}
