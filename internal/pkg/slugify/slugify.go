// Package slugify derives URL slugs from free text. Short results get a
// random suffix so that near-identical short titles do not collide; this is
// a best-effort aid, callers needing strict uniqueness must still check
// against existing slugs.
package slugify

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/gosimple/slug"
)

// Policy constants, not load-bearing behavior.
const (
	minLength = 10
	padLength = 8
)

const padAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Make joins the non-empty parts, slugifies the result and pads it with a
// random alphanumeric suffix when the base is shorter than minLength.
func Make(parts ...string) string {
	joined := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			joined = append(joined, s)
		}
	}

	base := slug.Make(strings.Join(joined, " "))
	if len(base) >= minLength {
		return base
	}

	suffix := randomSuffix(padLength)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

func randomSuffix(n int) string {
	max := big.NewInt(int64(len(padAlphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the platform RNG is broken;
			// nothing sensible to return.
			panic(err)
		}
		b[i] = padAlphabet[idx.Int64()]
	}
	return string(b)
}
