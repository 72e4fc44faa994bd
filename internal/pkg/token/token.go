package token

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const slugSuffixLen = 6

const base36 = "abcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns a fresh opaque token for QR payloads.
// Tokens are unique identifiers, not guessable short codes.
func Generate() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

var (
	nonWordRegex   = regexp.MustCompile(`[^\w\s-]`)
	spaceRegex     = regexp.MustCompile(`\s+`)
	multiDashRegex = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe slug from a display name and appends a short
// random suffix so that two organizations with the same name get distinct
// slugs.
func Slugify(name string) string {
	base := strings.ToLower(name)
	base = nonWordRegex.ReplaceAllString(base, "")
	base = spaceRegex.ReplaceAllString(base, "-")
	base = multiDashRegex.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	suffix := randomBase36(slugSuffixLen)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

func randomBase36(n int) string {
	var sb strings.Builder
	max := big.NewInt(int64(len(base36)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			sb.WriteByte('0')
			continue
		}
		sb.WriteByte(base36[idx.Int64()])
	}
	return sb.String()
}
