package client

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <email>",
		Short: "Create an account",
		Long: `Creates an account on the storage server.

A new key pair is generated on this device. The private key is sent to the
server only after being encrypted with a key derived from your password.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env, err := a.loadEnv(ctx)
			if err != nil {
				return err
			}

			password, err := a.readNewSecret("Password")
			if err != nil {
				return err
			}

			stop := startSpinner(cmd.ErrOrStderr(), "Generating keys...")
			err = env.services.AuthService.Register(ctx, args[0], password)
			stop()
			if err != nil {
				return err
			}

			printOK(cmd.OutOrStdout(), "Account %s created", args[0])
			printHint(cmd.OutOrStdout(), "Run %s to start using it", codeStyle.Render(appName+" login "+args[0]))
			return nil
		},
	}
}

func (a *App) loginCmd() *cobra.Command {
	var noVaultPassword bool

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Log in and store your keys on this device",
		Long: `Logs in to the storage server and keeps your key pair in the local vault.

The vault is protected by an optional vault password. Without one the keys
are sealed with a fixed device key and anyone with access to the vault file
can use them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env, err := a.loadEnv(ctx)
			if err != nil {
				return err
			}

			password, err := a.prompt("Password")
			if err != nil {
				return err
			}

			stop := startSpinner(cmd.ErrOrStderr(), "Logging in...")
			sess, err := env.services.AuthService.Login(ctx, strings.TrimSpace(args[0]), password)
			stop()
			if err != nil {
				return err
			}
			defer sess.Close()

			var vaultPassword string
			if !noVaultPassword {
				if vaultPassword, err = a.readNewSecret("Vault password (empty for none)"); err != nil {
					return err
				}
			}

			stop = startSpinner(cmd.ErrOrStderr(), "Sealing vault...")
			err = env.services.AuthService.Remember(ctx, sess, vaultPassword)
			stop()
			if err != nil {
				return err
			}

			printOK(cmd.OutOrStdout(), "Logged in as %s", sess.Identifier())
			return nil
		},
	}
	cmd.Flags().BoolVar(&noVaultPassword, "no-vault-password", false, "seal the vault with the device key")

	return cmd
}

func (a *App) unlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock",
		Short: "Check that the local vault opens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := a.unlock(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			who := sess.Identifier()
			if who == "" {
				who = "local keys only"
			}
			printOK(cmd.OutOrStdout(), "Vault unlocked (%s)", who)
			return nil
		},
	}
}

func (a *App) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the server session and remove local keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			env, err := a.loadEnv(ctx)
			if err != nil {
				return err
			}

			// A vault that no longer opens is still removed.
			sess, err := a.unlock(ctx, cmd)
			if err != nil {
				env.log.Warn().Err(err).Msg("logout without unlocked session")
				sess = nil
			}

			if err = env.services.AuthService.Logout(ctx, sess); err != nil {
				return fmt.Errorf("logout: %w", err)
			}

			printOK(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}
