package tools

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/tartampluch/go-toolbox/internal/config"
)

// randReader is the entropy source; tests swap it to exercise failures.
var randReader io.Reader = rand.Reader

// PasswordOptions selects the length and character classes of a password.
type PasswordOptions struct {
	Length  int
	Lower   bool
	Upper   bool
	Digits  bool
	Symbols bool
}

// DefaultPasswordOptions enables every class but symbols.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{
		Length: config.PasswordDefaultLength,
		Lower:  true,
		Upper:  true,
		Digits: true,
	}
}

func (o PasswordOptions) classes() []string {
	var out []string
	if o.Lower {
		out = append(out, config.PasswordLower)
	}
	if o.Upper {
		out = append(out, config.PasswordUpper)
	}
	if o.Digits {
		out = append(out, config.PasswordDigits)
	}
	if o.Symbols {
		out = append(out, config.PasswordSymbols)
	}
	return out
}

// GeneratePassword draws a password from crypto/rand. It holds at least one
// character of every selected class; the positions are shuffled.
func GeneratePassword(opts PasswordOptions) (string, error) {
	if opts.Length < config.PasswordMinLength || opts.Length > config.PasswordMaxLength {
		return "", fmt.Errorf("%w: %d not in [%d, %d]", ErrPasswordLength,
			opts.Length, config.PasswordMinLength, config.PasswordMaxLength)
	}
	classes := opts.classes()
	if len(classes) == 0 {
		return "", ErrPasswordClasses
	}

	var all string
	for _, c := range classes {
		all += c
	}

	out := make([]byte, 0, opts.Length)
	for _, c := range classes {
		b, err := pick(c)
		if err != nil {
			return "", err
		}
		out = append(out, b)
	}
	for len(out) < opts.Length {
		b, err := pick(all)
		if err != nil {
			return "", err
		}
		out = append(out, b)
	}

	// Fisher-Yates, so the guaranteed characters do not sit up front.
	for i := len(out) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return "", err
		}
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

func pick(alphabet string) (byte, error) {
	i, err := randInt(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

func randInt(n int) (int, error) {
	v, err := rand.Int(randReader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", config.ErrRandom, err)
	}
	return int(v.Int64()), nil
}
