package directions

import (
	"regexp"
	"strings"
)

var (
	// Authorization scheme tokens, e.g. "KakaoAK abc123" or "Bearer abc123".
	authSchemeRe = regexp.MustCompile(`(?i)\b(KakaoAK|Bearer|Basic)\s+[A-Za-z0-9._~+/=-]+`)

	// Credential-bearing query parameters, e.g. "?apiKey=abc123".
	queryParamRe = regexp.MustCompile(`(?i)([?&](?:apikey|api_key|key|token|secret)=)[^&\s"']+`)
)

// scrub removes credential-like substrings from s so it is safe to place in
// warnings or responses: authorization scheme tokens, key/token/secret query
// parameters, and the literal secret values passed in.
func scrub(s string, secrets ...string) string {
	s = authSchemeRe.ReplaceAllString(s, "$1 [redacted]")
	s = queryParamRe.ReplaceAllString(s, "$1[redacted]")
	for _, secret := range secrets {
		if secret != "" {
			s = strings.ReplaceAll(s, secret, "[redacted]")
		}
	}
	return s
}
