package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

// testClock is a movable clock shared by an issuer/verifier pair in one test.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestSigningConfig(t *testing.T) SigningConfig {
	t.Helper()
	cfg, err := NewSigningConfig([]byte("s3cret"), "svc-a", "svc-a-issuer")
	require.NoError(t, err)
	return cfg
}

// signRaw builds a compact HS256 token by hand so tests do not depend on the issuer.
func signRaw(t *testing.T, key []byte, header, payload map[string]any) string {
	t.Helper()
	h, err := json.Marshal(header)
	require.NoError(t, err)
	p, err := json.Marshal(payload)
	require.NoError(t, err)

	signingInput := base64.RawURLEncoding.EncodeToString(h) + "." + base64.RawURLEncoding.EncodeToString(p)
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(signingInput))
	return signingInput + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func hs256Header() map[string]any {
	return map[string]any{"alg": "HS256", "typ": "JWT"}
}

func validPayload(exp time.Time) map[string]any {
	return map[string]any{
		"sub": "alice",
		"exp": exp.Unix(),
		"aud": "svc-a",
		"iss": "svc-a-issuer",
	}
}
