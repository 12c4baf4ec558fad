package directions

import (
	"strings"
	"testing"
)

func TestScrub_AuthorizationScheme(t *testing.T) {
	in := `kakao: status 401 for request with Authorization: KakaoAK abc123def`
	out := scrub(in)
	if strings.Contains(out, "abc123def") {
		t.Errorf("token survived scrubbing: %s", out)
	}
	if !strings.Contains(out, "KakaoAK [redacted]") {
		t.Errorf("scheme should remain with redacted token: %s", out)
	}
}

func TestScrub_QueryParameter(t *testing.T) {
	in := `odsay: http: Get "https://api.odsay.com/v1/api/searchPubTransPathT?SX=127.0&apiKey=abc123def": dial tcp: timeout`
	out := scrub(in)
	if strings.Contains(out, "abc123def") {
		t.Errorf("query credential survived scrubbing: %s", out)
	}
	if !strings.Contains(out, "apiKey=[redacted]") {
		t.Errorf("parameter name should remain: %s", out)
	}
	if !strings.Contains(out, "SX=127.0") {
		t.Errorf("non-credential parameters should survive: %s", out)
	}
}

func TestScrub_LiteralSecret(t *testing.T) {
	in := "upstream rejected value my-secret-value in payload"
	out := scrub(in, "my-secret-value")
	if strings.Contains(out, "my-secret-value") {
		t.Errorf("literal secret survived scrubbing: %s", out)
	}
	if !strings.Contains(out, "[redacted]") {
		t.Errorf("expected redaction marker: %s", out)
	}
}

func TestScrub_EmptySecretIgnored(t *testing.T) {
	in := "plain message"
	if out := scrub(in, ""); out != in {
		t.Errorf("empty secret should not alter the message: %s", out)
	}
}
