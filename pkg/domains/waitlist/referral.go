package waitlist

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	codeAlphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	codePrefixMax    = 6
	codeSuffixLength = 4
)

// GenerateReferralCode derives a short shareable code from the email's
// local part: up to 6 lowercase alphanumerics, a dash, then 4 random
// base36 characters.
func GenerateReferralCode(email string) string {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}

	var prefix strings.Builder
	for _, r := range strings.ToLower(local) {
		if prefix.Len() >= codePrefixMax {
			break
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			prefix.WriteRune(r)
		}
	}

	return prefix.String() + "-" + randomBase36(codeSuffixLength)
}

func randomBase36(n int) string {
	out := make([]byte, n)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		out[i] = codeAlphabet[idx.Int64()]
	}
	return string(out)
}
