package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	upperChars     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars     = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "1234567890"
	DefaultSymbols = "!@#$%^&*"
)

// RandomBytes returns n bytes from the OS CSPRNG.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

// RandomInt returns a value in [min, max]. A 32-bit draw is scaled to [0, 1)
// and redrawn while r*span >= span.
func RandomInt(min, max int) (int, error) {
	if max < min {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max)
	}

	span := float64(max-min) + 1
	var buf [4]byte
	for {
		if _, err := io.ReadFull(rand.Reader, buf[:]); err != nil {
			return 0, fmt.Errorf("read random int: %w", err)
		}

		r := float64(binary.BigEndian.Uint32(buf[:])) / (math.MaxUint32 + 1)
		if r*span < span {
			return int(math.Floor(r*span)) + min, nil
		}
	}
}

// StringOptions selects the character classes of [RandomString].
type StringOptions struct {
	// Length is the requested length. When fewer characters than enabled
	// classes are requested, one character per class is still produced.
	Length  int
	Upper   bool
	Lower   bool
	Numbers bool
	Symbols bool
	// SymbolSet overrides [DefaultSymbols] when non-empty.
	SymbolSet string
}

// RandomString builds a random string that contains at least one character
// from every enabled class, fills the rest from the union of the classes and
// shuffles the result.
func RandomString(opts StringOptions) (string, error) {
	classes := make([]string, 0, 4)
	if opts.Upper {
		classes = append(classes, upperChars)
	}
	if opts.Lower {
		classes = append(classes, lowerChars)
	}
	if opts.Numbers {
		classes = append(classes, numberChars)
	}
	if opts.Symbols {
		if opts.SymbolSet != "" {
			classes = append(classes, opts.SymbolSet)
		} else {
			classes = append(classes, DefaultSymbols)
		}
	}
	if len(classes) == 0 {
		return "", ErrNoCharacterClass
	}

	result := make([]rune, 0, max(opts.Length, len(classes)))
	for _, class := range classes {
		c, err := randomChar([]rune(class))
		if err != nil {
			return "", err
		}
		result = append(result, c)
	}

	all := []rune(strings.Join(classes, ""))
	for len(result) < opts.Length {
		c, err := randomChar(all)
		if err != nil {
			return "", err
		}
		result = append(result, c)
	}

	if err := shuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

func randomChar(chars []rune) (rune, error) {
	n, err := RandomInt(0, 255)
	if err != nil {
		return 0, err
	}
	return chars[n%len(chars)], nil
}

func shuffle(s []rune) error {
	for i := len(s) - 1; i > 0; i-- {
		j, err := RandomInt(0, i)
		if err != nil {
			return err
		}
		s[i], s[j] = s[j], s[i]
	}
	return nil
}

// PassphraseOptions configures [RandomPassphrase].
type PassphraseOptions struct {
	Wordlist   []string
	Words      int
	Separator  string
	Capitalize bool
	// IncludeDigit places a single digit before or after one of the words.
	IncludeDigit bool
}

// RandomPassphrase joins Words random words from Wordlist with Separator.
// With IncludeDigit one slot among the 2*Words positions around the words is
// chosen uniformly: slot 2i precedes word i, slot 2i+1 follows it. Words keep
// their generation order.
func RandomPassphrase(opts PassphraseOptions) (string, error) {
	if len(opts.Wordlist) == 0 || opts.Words < 1 {
		return "", ErrEmptyWordlist
	}

	digitSlot := -1
	if opts.IncludeDigit {
		slot, err := RandomInt(0, opts.Words*2-1)
		if err != nil {
			return "", err
		}
		digitSlot = slot
	}

	var sb strings.Builder
	for i := range opts.Words {
		if digitSlot == i*2 {
			if err := writeDigit(&sb); err != nil {
				return "", err
			}
		}

		idx, err := RandomInt(0, len(opts.Wordlist)-1)
		if err != nil {
			return "", err
		}

		word := opts.Wordlist[idx]
		if opts.Capitalize {
			word = capitalize(word)
		}
		sb.WriteString(word)

		if digitSlot == i*2+1 {
			if err = writeDigit(&sb); err != nil {
				return "", err
			}
		}

		if i < opts.Words-1 {
			sb.WriteString(opts.Separator)
		}
	}

	return sb.String(), nil
}

func writeDigit(sb *strings.Builder) error {
	d, err := RandomInt(0, 9)
	if err != nil {
		return err
	}
	sb.WriteString(strconv.Itoa(d))
	return nil
}

func capitalize(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	if first == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
}
