package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-zk-drive/internal/adapter"
	"github.com/MKhiriev/go-zk-drive/internal/config"
	"github.com/MKhiriev/go-zk-drive/internal/crypto"
	"github.com/MKhiriev/go-zk-drive/internal/logger"
	"github.com/MKhiriev/go-zk-drive/internal/service"
	"github.com/MKhiriev/go-zk-drive/internal/store"
	"github.com/MKhiriev/go-zk-drive/internal/workers"
	"github.com/MKhiriev/go-zk-drive/models"
	"github.com/spf13/cobra"
)

const appName = "zkdrive"

// App is the zkdrive command line.
type App struct {
	build models.BuildInfo
	flags *config.StructuredConfig
	root  *cobra.Command

	in     io.Reader
	lines  *bufio.Reader
	out    io.Writer
	errOut io.Writer
	prompt func(label string) (string, error)

	env *environment
}

// environment holds everything opened from the configuration. It is built
// on first use.
type environment struct {
	cfg      *config.ClientConfig
	log      *logger.Logger
	storages *store.ClientStorages
	adapter  adapter.ServerAdapter
	keyChain crypto.KeyChainService
	services *service.ClientServices
	pool     *workers.TransferPool
}

var _ Client = (*App)(nil)

// NewApp builds the command tree. Output goes to stdout and stderr and
// secrets are read from the terminal.
func NewApp(build models.BuildInfo) *App {
	a := &App{
		build:  build,
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	a.prompt = a.readSecret

	a.root = &cobra.Command{
		Use:           appName,
		Short:         "Zero-knowledge encrypted file storage client",
		Long:          "zkdrive encrypts files on this device before they reach the storage server.\nThe server never sees passwords, keys or plaintext.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.close()
		},
	}
	a.flags = config.BindFlags(a.root.PersistentFlags())

	a.root.AddCommand(
		a.versionCmd(),
		a.registerCmd(),
		a.loginCmd(),
		a.unlockCmd(),
		a.logoutCmd(),
		a.uploadCmd(),
		a.downloadCmd(),
		a.sendTextCmd(),
		a.shareCmd(),
		a.passgenCmd(),
		a.vaultCmd(),
	)

	return a
}

// Run executes the command named by args.
func (a *App) Run(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	a.root.SetIn(a.in)
	a.root.SetOut(a.out)
	a.root.SetErr(a.errOut)

	err := a.root.ExecuteContext(ctx)
	if err != nil {
		if a.env != nil {
			a.env.log.Err(err).Msg("command failed")
		}
		fmt.Fprintln(a.errOut, errorStyle.Render("✗ "+userMessage(err)))
		_ = a.close()
	}
	return err
}

// loadEnv loads the configuration and opens storage and the adapter.
func (a *App) loadEnv(ctx context.Context) (*environment, error) {
	if a.env != nil {
		return a.env, nil
	}

	cfg, err := config.GetClientConfig(a.flags)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewClientLogger(appName, cfg.App.LogLevel)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("open local vault: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	keyChain := crypto.NewKeyChainService(cfg.Crypto)

	a.env = &environment{
		cfg:      cfg,
		log:      log,
		storages: storages,
		adapter:  serverAdapter,
		keyChain: keyChain,
		services: service.NewClientServices(storages, serverAdapter, keyChain, cfg, log),
		pool:     workers.NewTransferPool(cfg.Workers, log),
	}
	return a.env, nil
}

func (a *App) close() error {
	if a.env == nil {
		return nil
	}
	err := a.env.storages.Close()
	a.env = nil
	return err
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), a.build.String())
		},
	}
}
