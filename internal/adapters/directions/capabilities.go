package directions

import (
	"strings"
	"sync"

	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/pkg/config"
)

// Capabilities is the immutable set of providers with usable credentials.
// It is resolved once per process; credentials do not change while running.
type Capabilities struct {
	kakaoKey string
	odsayKey string
}

var (
	capsOnce sync.Once
	caps     Capabilities
)

// ResolveCapabilities resolves the provider capability set from the loaded
// credentials. The first resolution wins; later calls return the cached value.
func ResolveCapabilities(creds config.ProviderCredentials) Capabilities {
	capsOnce.Do(func() {
		caps = capabilitiesFrom(creds)
	})
	return caps
}

// capabilitiesFrom treats a credential as absent when it is unset or blank
// after trimming.
func capabilitiesFrom(creds config.ProviderCredentials) Capabilities {
	return Capabilities{
		kakaoKey: strings.TrimSpace(creds.KakaoKey),
		odsayKey: strings.TrimSpace(creds.ODsayKey),
	}
}

// HasKakao reports whether the Kakao directions provider is usable.
func (c Capabilities) HasKakao() bool { return c.kakaoKey != "" }

// HasODsay reports whether the ODsay transit provider is usable.
func (c Capabilities) HasODsay() bool { return c.odsayKey != "" }

// Any reports whether at least one provider is usable.
func (c Capabilities) Any() bool { return c.HasKakao() || c.HasODsay() }

// secrets returns the configured credential values, for redaction.
func (c Capabilities) secrets() []string {
	var s []string
	if c.kakaoKey != "" {
		s = append(s, c.kakaoKey)
	}
	if c.odsayKey != "" {
		s = append(s, c.odsayKey)
	}
	return s
}
