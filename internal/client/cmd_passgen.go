package client

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-zk-drive/internal/crypto"
	"github.com/MKhiriev/go-zk-drive/internal/store"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

type passgenOptions struct {
	length     int
	noUpper    bool
	noLower    bool
	noNumbers  bool
	noSymbols  bool
	symbols    string
	passphrase bool
	words      int
	separator  string
	capitalize bool
	digit      bool
	short      bool
	copy       bool
}

func (a *App) passgenCmd() *cobra.Command {
	var opts passgenOptions

	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate a random password or passphrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				secret string
				err    error
			)

			if opts.passphrase {
				secret, err = a.generatePassphrase(cmd, opts)
			} else {
				secret, err = crypto.RandomString(crypto.StringOptions{
					Length:    opts.length,
					Upper:     !opts.noUpper,
					Lower:     !opts.noLower,
					Numbers:   !opts.noNumbers,
					Symbols:   !opts.noSymbols,
					SymbolSet: opts.symbols,
				})
			}
			if err != nil {
				return err
			}

			if opts.copy {
				if err = clipboard.WriteAll(secret); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				printOK(cmd.OutOrStdout(), "Copied to clipboard")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), secret)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.length, "length", "l", 20, "password length")
	f.BoolVar(&opts.noUpper, "no-upper", false, "leave out uppercase letters")
	f.BoolVar(&opts.noLower, "no-lower", false, "leave out lowercase letters")
	f.BoolVar(&opts.noNumbers, "no-numbers", false, "leave out digits")
	f.BoolVar(&opts.noSymbols, "no-symbols", false, "leave out symbols")
	f.StringVar(&opts.symbols, "symbols", "", "symbol set (default "+crypto.DefaultSymbols+")")
	f.BoolVarP(&opts.passphrase, "passphrase", "p", false, "generate a passphrase from the stored wordlists")
	f.IntVarP(&opts.words, "words", "w", 5, "passphrase word count")
	f.StringVar(&opts.separator, "separator", "-", "passphrase word separator")
	f.BoolVar(&opts.capitalize, "capitalize", false, "capitalize passphrase words")
	f.BoolVar(&opts.digit, "digit", false, "add a digit next to one passphrase word")
	f.BoolVar(&opts.short, "short", false, "use the short wordlist")
	f.BoolVar(&opts.copy, "copy", false, "copy to the clipboard instead of printing")

	cmd.AddCommand(a.importWordlistsCmd())

	return cmd
}

func (a *App) generatePassphrase(cmd *cobra.Command, opts passgenOptions) (string, error) {
	env, err := a.loadEnv(cmd.Context())
	if err != nil {
		return "", err
	}

	long, short, err := env.services.VaultService.LoadWordlists(cmd.Context())
	if errors.Is(err, store.ErrWordlistsNotFound) {
		printHint(cmd.ErrOrStderr(), "Import wordlists with %s", codeStyle.Render(appName+" passgen import --long FILE --short FILE"))
		return "", err
	}
	if err != nil {
		return "", err
	}

	wordlist := long
	if opts.short {
		wordlist = short
	}

	return crypto.RandomPassphrase(crypto.PassphraseOptions{
		Wordlist:     wordlist,
		Words:        opts.words,
		Separator:    opts.separator,
		Capitalize:   opts.capitalize,
		IncludeDigit: opts.digit,
	})
}

func (a *App) importWordlistsCmd() *cobra.Command {
	var longPath, shortPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Store passphrase wordlists in the local vault",
		Long:  "Reads one word per line. Blank lines are skipped and only the last field of a line is kept, so diceware files work as is.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			env, err := a.loadEnv(ctx)
			if err != nil {
				return err
			}

			long, err := readWordlist(longPath)
			if err != nil {
				return err
			}
			short, err := readWordlist(shortPath)
			if err != nil {
				return err
			}

			if err = env.services.VaultService.StoreWordlists(ctx, long, short); err != nil {
				return err
			}

			printOK(cmd.OutOrStdout(), "Stored %d long and %d short words", len(long), len(short))
			return nil
		},
	}
	cmd.Flags().StringVar(&longPath, "long", "", "long wordlist file")
	cmd.Flags().StringVar(&shortPath, "short", "", "short wordlist file")
	_ = cmd.MarkFlagRequired("long")
	_ = cmd.MarkFlagRequired("short")

	return cmd
}

// readWordlist reads one word per line. Diceware files carry the dice roll
// first, so the last field of each line is taken.
func readWordlist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		words = append(words, fields[len(fields)-1])
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %s", crypto.ErrEmptyWordlist, path)
	}
	return words, nil
}
