package client

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-zk-drive/internal/service"
	"github.com/MKhiriev/go-zk-drive/internal/store"
	"github.com/MKhiriev/go-zk-drive/models"
	"github.com/spf13/cobra"
)

func (a *App) vaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Inspect or change the local key vault",
	}
	cmd.AddCommand(a.vaultStatusCmd(), a.vaultPasswordCmd(), a.vaultClearCmd())
	return cmd
}

// vaultStatus is what vault status reports.
type vaultStatus struct {
	stored    bool
	protected bool
	session   models.LocalSession
	loggedIn  bool
	dbPath    string
}

func (s vaultStatus) String() string {
	if !s.stored {
		return fmt.Sprintf("%s\n  file:     %s\n  keys:     none", titleStyle.Render("Vault"), s.dbPath)
	}

	protection := "device key"
	if s.protected {
		protection = "vault password"
	}
	account := "not logged in"
	if s.loggedIn {
		account = s.session.Identifier
		if !s.session.Token.ExpiresAt.IsZero() {
			account += fmt.Sprintf(" (token expires %s)", s.session.Token.ExpiresAt.Local().Format("2006-01-02 15:04"))
		}
	}

	return fmt.Sprintf("%s\n  file:     %s\n  keys:     stored\n  sealed:   %s\n  account:  %s",
		titleStyle.Render("Vault"), s.dbPath, protection, account)
}

func (a *App) vaultStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show what the local vault holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			env, err := a.loadEnv(ctx)
			if err != nil {
				return err
			}

			status := vaultStatus{dbPath: env.cfg.Storage.DB.DSN}

			status.protected, err = env.services.VaultService.IsPasswordProtected(ctx)
			switch {
			case errors.Is(err, service.ErrVaultNotFound):
			case err != nil:
				return err
			default:
				status.stored = true
			}

			status.session, err = env.storages.Sessions.GetSession(ctx)
			switch {
			case errors.Is(err, store.ErrLocalSessionNotFound):
			case err != nil:
				return err
			default:
				status.loggedIn = true
			}

			fmt.Fprintln(cmd.OutOrStdout(), status)
			return nil
		},
	}
}

func (a *App) vaultPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "password",
		Short: "Change the vault password",
		Long:  "Re-seals the stored key pair under a new vault password. An empty password switches to the device key.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			env, err := a.loadEnv(ctx)
			if err != nil {
				return err
			}

			sess, err := a.unlock(ctx, cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			vaultPassword, err := a.readNewSecret("New vault password (empty for none)")
			if err != nil {
				return err
			}

			stop := startSpinner(cmd.ErrOrStderr(), "Sealing vault...")
			err = env.services.AuthService.Remember(ctx, sess, vaultPassword)
			stop()
			if err != nil {
				return err
			}

			printOK(cmd.OutOrStdout(), "Vault password changed")
			return nil
		},
	}
}

func (a *App) vaultClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the key pair from this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			env, err := a.loadEnv(ctx)
			if err != nil {
				return err
			}

			if err = env.services.VaultService.Clear(ctx); err != nil {
				return err
			}

			printOK(cmd.OutOrStdout(), "Vault cleared")
			return nil
		},
	}
}
