package client

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-zk-drive/internal/crypto"
	"github.com/MKhiriev/go-zk-drive/internal/service"
	"github.com/MKhiriev/go-zk-drive/models"
	"github.com/spf13/cobra"
)

// unlock opens the local vault, asking for the vault password only when the
// vault is password protected.
func (a *App) unlock(ctx context.Context, cmd *cobra.Command) (*service.Session, error) {
	env, err := a.loadEnv(ctx)
	if err != nil {
		return nil, err
	}

	protected, err := env.services.VaultService.IsPasswordProtected(ctx)
	if err != nil {
		return nil, err
	}

	var vaultPassword string
	if protected {
		if vaultPassword, err = a.prompt("Vault password"); err != nil {
			return nil, err
		}
	}

	stop := startSpinner(cmd.ErrOrStderr(), "Unlocking vault...")
	sess, err := env.services.AuthService.Unlock(ctx, vaultPassword)
	stop()
	return sess, err
}

// unlockOnline is unlock for commands that talk to the server.
func (a *App) unlockOnline(ctx context.Context, cmd *cobra.Command) (*service.Session, error) {
	sess, err := a.unlock(ctx, cmd)
	if err != nil {
		return nil, err
	}

	if sess.Token().Raw == "" {
		sess.Close()
		return nil, service.ErrNotLoggedIn
	}
	if err = sess.Usable(time.Now()); err != nil {
		sess.Close()
		return nil, err
	}
	return sess, nil
}

// keyFlags are the ways a command can name an item key.
type keyFlags struct {
	keyHex       string
	protectedHex string
	sequence     []string
	password     string
	saltHex      string
	nameHex      string
}

func (f *keyFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.keyHex, "key", "", "item key (hex)")
	cmd.Flags().StringVar(&f.protectedHex, "protected-key", "", "item key wrapped for you (hex)")
	cmd.Flags().StringSliceVar(&f.sequence, "key-sequence", nil, "wrapped key envelopes from your key down to the item (hex, comma separated)")
	cmd.Flags().StringVar(&f.password, "password", "", "password of a protected send")
	cmd.Flags().StringVar(&f.saltHex, "salt", "", "salt of a protected send (hex)")
	cmd.Flags().StringVar(&f.nameHex, "name", "", "encrypted item name (hex), required with --key-sequence")
	cmd.MarkFlagsMutuallyExclusive("key", "protected-key", "key-sequence", "password")
	cmd.MarkFlagsRequiredTogether("password", "salt")
}

// needsSession reports whether resolving the key requires the private key.
func (f *keyFlags) needsSession() bool {
	return f.protectedHex != "" || len(f.sequence) > 0
}

// resolveItemKey returns the item key named by f.
func (a *App) resolveItemKey(env *environment, sess *service.Session, f keyFlags) ([]byte, error) {
	switch {
	case f.keyHex != "":
		return decodeHex("key", f.keyHex)

	case f.password != "":
		salt, err := decodeHex("salt", f.saltHex)
		if err != nil {
			return nil, err
		}
		key, _, err := env.keyChain.DeriveSendKey(f.password, salt)
		return key, err

	case f.protectedHex != "":
		protected, err := decodeHex("protected key", f.protectedHex)
		if err != nil {
			return nil, err
		}
		return env.services.ShareService.AcceptShare(sess, protected)

	case len(f.sequence) > 0:
		if f.nameHex == "" {
			return nil, errors.New("--key-sequence needs --name to confirm the resolved key")
		}
		name, err := decodeHex("name", f.nameHex)
		if err != nil {
			return nil, err
		}

		seq := make(models.KeySequence, 0, len(f.sequence))
		for i, s := range f.sequence {
			envelope, err := decodeHex(fmt.Sprintf("envelope %d", i), s)
			if err != nil {
				return nil, err
			}
			seq = append(seq, envelope)
		}

		var key []byte
		err = sess.WithPrivateKey(func(privateKey []byte) error {
			var err error
			key, err = env.keyChain.UnwindKeySequence(privateKey, seq, crypto.SealedWith(name))
			return err
		})
		return key, err
	}

	return nil, fmt.Errorf("no item key given, use --key, --protected-key, --key-sequence or --password")
}

func decodeHex(what, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", what, err)
	}
	return b, nil
}
