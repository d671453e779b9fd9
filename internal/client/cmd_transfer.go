package client

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-zk-drive/internal/crypto"
	"github.com/MKhiriev/go-zk-drive/internal/service"
	"github.com/MKhiriev/go-zk-drive/internal/workers"
	"github.com/MKhiriev/go-zk-drive/models"
	"github.com/spf13/cobra"
)

// sendOptions are the server-side limits of a send.
type sendOptions struct {
	downloads  int
	expiration string
	password   bool
}

func (o *sendOptions) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.downloads, "downloads", 1, "number of downloads allowed (send scope)")
	cmd.Flags().StringVar(&o.expiration, "expire", "1d", "expiration, e.g. 1h, 1d, 7d (send scope)")
	cmd.Flags().BoolVar(&o.password, "with-password", false, "protect the send with a password instead of a link key")
}

func parseScope(s string) (models.TransferScope, error) {
	scope := models.TransferScope(s)
	if !scope.Valid() {
		return "", fmt.Errorf("%w: %q, want vault or send", service.ErrInvalidScope, s)
	}
	return scope, nil
}

// uploadResult is what one finished upload prints.
type uploadResult struct {
	path   string
	id     string
	key    []byte
	salt   []byte
	sealed []byte
}

func (a *App) uploadCmd() *cobra.Command {
	var (
		scopeName string
		folderID  string
		send      sendOptions
	)

	cmd := &cobra.Command{
		Use:   "upload <file>...",
		Short: "Encrypt and upload files",
		Long: `Encrypts each file on this device and uploads it in chunks.

In the vault scope every file gets a fresh item key wrapped under your public
key. In the send scope the item key is either printed as a link key or
derived from a password.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			scope, err := parseScope(scopeName)
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

			var secret string
			if scope == models.ScopeSend && send.password {
				if secret, err = a.readNewSecret("Send password"); err != nil {
					return err
				}
			}

			results := make([]uploadResult, len(args))
			tasks := make([]workers.Task, len(args))
			for i, path := range args {
				tasks[i] = workers.TaskFunc{Label: path, Fn: func(ctx context.Context) error {
					res, err := a.uploadFile(ctx, cmd, env, sess, uploadSpec{
						path:     path,
						scope:    scope,
						folderID: folderID,
						send:     send,
						secret:   secret,
					})
					results[i] = res
					return err
				}}
			}

			runs := env.pool.Run(ctx, tasks)
			out := cmd.OutOrStdout()
			for i, r := range runs {
				if r.Err != nil {
					continue
				}
				res := results[i]
				printOK(out, "%s → %s", filepath.Base(res.path), res.id)
				switch {
				case res.salt != nil:
					printHint(out, "salt %s", hex.EncodeToString(res.salt))
				case scope == models.ScopeSend:
					printHint(out, "link key %s", hex.EncodeToString(res.key))
				default:
					printHint(out, "protected key %s", hex.EncodeToString(res.sealed))
				}
				crypto.Zero(res.key)
			}

			return joinFailures(runs)
		},
	}
	cmd.Flags().StringVar(&scopeName, "scope", string(models.ScopeVault), "transfer scope: vault or send")
	cmd.Flags().StringVar(&folderID, "folder", "", "parent folder id (vault scope)")
	send.bind(cmd)

	return cmd
}

type uploadSpec struct {
	path     string
	scope    models.TransferScope
	folderID string
	send     sendOptions
	secret   string
}

func (a *App) uploadFile(ctx context.Context, cmd *cobra.Command, env *environment, sess *service.Session, spec uploadSpec) (uploadResult, error) {
	res := uploadResult{path: spec.path}

	f, err := os.Open(spec.path)
	if err != nil {
		return res, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return res, err
	}
	if info.IsDir() {
		return res, fmt.Errorf("%s is a directory", spec.path)
	}

	meta := models.UploadMetadata{}
	switch {
	case spec.scope == models.ScopeVault:
		if res.key, err = env.keyChain.GenerateItemKey(); err != nil {
			return res, err
		}
		publicKey, err := sess.PublicKey()
		if err != nil {
			return res, err
		}
		if res.sealed, err = env.keyChain.WrapItemKeyForRecipient(publicKey, res.key); err != nil {
			return res, err
		}
		meta.FolderID = spec.folderID
		meta.ProtectedKey = res.sealed

	case spec.secret != "":
		if res.key, res.salt, err = env.keyChain.DeriveSendKey(spec.secret, nil); err != nil {
			return res, err
		}
		meta.Salt = res.salt
		meta.Downloads = spec.send.downloads
		meta.Expiration = spec.send.expiration

	default:
		if res.key, err = env.keyChain.GenerateItemKey(); err != nil {
			return res, err
		}
		meta.Downloads = spec.send.downloads
		meta.Expiration = spec.send.expiration
	}

	bar := newProgressBar(cmd.ErrOrStderr(), filepath.Base(spec.path))
	res.id, err = env.services.TransferService.Upload(ctx, service.UploadRequest{
		Scope:    spec.scope,
		Name:     filepath.Base(spec.path),
		Body:     f,
		Size:     info.Size(),
		ItemKey:  res.key,
		Meta:     meta,
		Progress: bar.Update,
	})
	return res, err
}

func (a *App) downloadCmd() *cobra.Command {
	var (
		scopeName string
		chunks    int
		output    string
		keys      keyFlags
	)

	cmd := &cobra.Command{
		Use:   "download <id>",
		Short: "Download and decrypt an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			scope, err := parseScope(scopeName)
			if err != nil {
				return err
			}

			env, err := a.loadEnv(ctx)
			if err != nil {
				return err
			}

			var sess *service.Session
			if keys.needsSession() || scope == models.ScopeVault {
				if sess, err = a.unlockOnline(ctx, cmd); err != nil {
					return err
				}
				defer sess.Close()
			}

			itemKey, err := a.resolveItemKey(env, sess, keys)
			if err != nil {
				return err
			}
			defer crypto.Zero(itemKey)

			if output == "" {
				output = args[0]
				if keys.nameHex != "" {
					if output, err = env.services.TransferService.DecryptName(itemKey, keys.nameHex); err != nil {
						return err
					}
					output = filepath.Base(output)
				}
			}

			f, err := os.OpenFile(output, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
			if err != nil {
				return err
			}

			bar := newProgressBar(cmd.ErrOrStderr(), filepath.Base(output))
			err = env.services.TransferService.Download(ctx, service.DownloadRequest{
				Scope:    scope,
				ID:       args[0],
				Chunks:   chunks,
				ItemKey:  itemKey,
				Progress: bar.Update,
			}, f)
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				_ = os.Remove(output)
				return err
			}

			printOK(cmd.OutOrStdout(), "Saved %s", output)
			return nil
		},
	}
	cmd.Flags().StringVar(&scopeName, "scope", string(models.ScopeVault), "transfer scope: vault or send")
	cmd.Flags().IntVar(&chunks, "chunks", 1, "number of chunks of the item")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: decrypted name or id)")
	keys.bind(cmd)

	return cmd
}

func (a *App) sendTextCmd() *cobra.Command {
	var (
		name string
		send sendOptions
	)

	cmd := &cobra.Command{
		Use:   "send-text <text>",
		Short: "Encrypt and send a short text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env, err := a.loadEnv(ctx)
			if err != nil {
				return err
			}
			sess, err := a.unlockOnline(ctx, cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			req := service.TextRequest{
				Name:       name,
				Text:       args[0],
				Downloads:  send.downloads,
				Expiration: send.expiration,
			}

			if send.password {
				secret, err := a.readNewSecret("Send password")
				if err != nil {
					return err
				}
				if req.Key, req.Salt, err = env.keyChain.DeriveSendKey(secret, nil); err != nil {
					return err
				}
			} else if req.Key, err = env.keyChain.GenerateItemKey(); err != nil {
				return err
			}
			defer crypto.Zero(req.Key)

			id, err := env.services.TransferService.UploadText(ctx, req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printOK(out, "Sent %s", id)
			if req.Salt != nil {
				printHint(out, "salt %s", hex.EncodeToString(req.Salt))
			} else {
				printHint(out, "link key %s", hex.EncodeToString(req.Key))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "message.txt", "item name")
	send.bind(cmd)

	return cmd
}

// joinFailures reports every failed task of a pool run.
func joinFailures(results []workers.Result) error {
	failed := workers.Failed(results)
	if len(failed) == 0 {
		return nil
	}

	errs := make([]error, 0, len(failed))
	for _, r := range failed {
		errs = append(errs, fmt.Errorf("%s: %w", r.Name, r.Err))
	}
	return errors.Join(errs...)
}
