package client

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-zk-drive/internal/crypto"
	"github.com/MKhiriev/go-zk-drive/internal/service"
	"github.com/MKhiriev/go-zk-drive/models"
	"github.com/spf13/cobra"
)

func parseItemKind(s string) (models.ItemKind, error) {
	kind := models.ItemKind(s)
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q, want file or folder", service.ErrInvalidItemKind, s)
	}
	return kind, nil
}

func (a *App) shareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Manage who can access your files and folders",
	}

	cmd.AddCommand(
		a.shareGrantCmd(),
		a.shareRevokeCmd(),
		a.shareUpdateCmd(),
		a.shareListCmd(),
		a.shareAcceptCmd(),
	)
	return cmd
}

func (a *App) shareGrantCmd() *cobra.Command {
	var (
		canModify bool
		keys      keyFlags
	)

	cmd := &cobra.Command{
		Use:   "grant <file|folder> <item-id> <recipient>",
		Short: "Give a user access to an item",
		Long: `Wraps the item key under the recipient's public key and registers the grant.
The server never sees the item key.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			kind, err := parseItemKind(args[0])
			if err != nil {
				return err
			}

			env, err := a.loadEnv(ctx)
			if err != nil {
				return err
			}
			sess, err := a.unlockOnline(ctx, cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			itemKey, err := a.resolveItemKey(env, sess, keys)
			if err != nil {
				return err
			}
			defer crypto.Zero(itemKey)

			grant, err := env.services.ShareService.GrantAccess(ctx, sess, service.GrantRequest{
				Kind:      kind,
				ItemID:    args[1],
				Recipient: args[2],
				ItemKey:   itemKey,
				CanModify: canModify,
			})
			if err != nil {
				return err
			}

			printOK(cmd.OutOrStdout(), "Shared %s %s with %s (grant %s)", kind, args[1], args[2], grant.ID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&canModify, "can-modify", false, "allow the recipient to change the item")
	keys.bind(cmd)

	return cmd
}

func (a *App) shareRevokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <file|folder> <item-id> <grant-id>",
		Short: "Remove a user's access to an item",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			kind, err := parseItemKind(args[0])
			if err != nil {
				return err
			}

			env, err := a.loadEnv(ctx)
			if err != nil {
				return err
			}
			sess, err := a.unlockOnline(ctx, cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			if err = env.services.ShareService.RevokeAccess(ctx, sess, kind, args[1], args[2]); err != nil {
				return err
			}

			printOK(cmd.OutOrStdout(), "Grant %s revoked", args[2])
			return nil
		},
	}
}

func (a *App) shareUpdateCmd() *cobra.Command {
	var canModify bool

	cmd := &cobra.Command{
		Use:   "update <file|folder> <item-id> <grant-id>",
		Short: "Change what a user may do with an item",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			kind, err := parseItemKind(args[0])
			if err != nil {
				return err
			}

			env, err := a.loadEnv(ctx)
			if err != nil {
				return err
			}
			sess, err := a.unlockOnline(ctx, cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			if err = env.services.ShareService.UpdateGrant(ctx, sess, kind, args[1], args[2], canModify); err != nil {
				return err
			}

			printOK(cmd.OutOrStdout(), "Grant %s updated", args[2])
			return nil
		},
	}
	cmd.Flags().BoolVar(&canModify, "can-modify", false, "allow the recipient to change the item")

	return cmd
}

func (a *App) shareListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <file|folder> <item-id>",
		Short: "List the users an item is shared with",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			kind, err := parseItemKind(args[0])
			if err != nil {
				return err
			}

			env, err := a.loadEnv(ctx)
			if err != nil {
				return err
			}
			sess, err := a.unlockOnline(ctx, cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			grants, err := env.services.ShareService.ListGrants(ctx, sess, kind, args[1])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderGrants(grants))
			return nil
		},
	}
}

func (a *App) shareAcceptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <protected-key>",
		Short: "Recover the item key of an item shared with you",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			protected, err := decodeHex("protected key", args[0])
			if err != nil {
				return err
			}

			itemKey, err := env.services.ShareService.AcceptShare(sess, protected)
			if err != nil {
				return err
			}
			defer crypto.Zero(itemKey)

			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(itemKey))
			return nil
		},
	}
}

func renderGrants(grants []models.ShareGrant) string {
	if len(grants) == 0 {
		return helpStyle.Render("not shared with anyone")
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("%-24s %-32s %s", "GRANT", "RECIPIENT", "ACCESS")))
	for _, g := range grants {
		access := "read"
		if g.CanModify {
			access = "modify"
		}
		fmt.Fprintf(&sb, "\n%-24s %-32s %s", g.ID, g.Recipient, access)
	}
	return listBoxStyle.Render(sb.String())
}
