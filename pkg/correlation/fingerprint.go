package correlation

import "strings"

// Prefix lengths used across the correlation pipeline. The producer and the
// consumer both key on the 50-character fingerprint; a longer probe is used
// when testing whether an observed message contains a staged response, and
// the last-resort scan compares 200-character prefixes.
const (
	FingerprintLength = 50
	MatchProbeLength  = 100
	ScanPrefixLength  = 200

	fingerprintPrefix = "content_"
)

// Fingerprint derives the temporary correlation key for a response text:
// the first FingerprintLength characters with non-alphanumerics stripped.
func Fingerprint(text string) string {
	return fingerprintPrefix + stripNonAlnum(prefix(text, FingerprintLength))
}

// MatchProbe returns the prefix used to test whether an observed message
// body contains a staged response.
func MatchProbe(text string) string {
	return prefix(text, MatchProbeLength)
}

// ScanPrefix returns the prefix compared during the linear fallback scan.
func ScanPrefix(text string) string {
	return prefix(text, ScanPrefixLength)
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func stripNonAlnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
