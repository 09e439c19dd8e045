package authtoken

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	s := New("test-secret")
	token := s.Issue("admin")

	if !s.Verify(token, "admin") {
		t.Fatal("freshly issued token should verify")
	}
	if s.Verify(token, "someone-else") {
		t.Fatal("token must be bound to the issuing username")
	}
}

func TestVerifyExpiry(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s := New("test-secret")
	s.now = func() time.Time { return issuedAt }
	token := s.Issue("admin")

	s.now = func() time.Time { return issuedAt.Add(23*time.Hour + 59*time.Minute) }
	if !s.Verify(token, "admin") {
		t.Fatal("token should still verify just inside the 24h window")
	}

	s.now = func() time.Time { return issuedAt.Add(24*time.Hour + time.Minute) }
	if s.Verify(token, "admin") {
		t.Fatal("token must be rejected once older than 24h")
	}
}

func TestVerifyTamperedHash(t *testing.T) {
	s := New("test-secret")
	token := s.Issue("admin")

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("decode token: %v", err)
	}
	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", raw)
	}

	// Flip one hex digit of the hash segment.
	hash := []byte(parts[2])
	if hash[0] == 'a' {
		hash[0] = 'b'
	} else {
		hash[0] = 'a'
	}
	tampered := base64.StdEncoding.EncodeToString([]byte(parts[0] + ":" + parts[1] + ":" + string(hash)))

	if s.Verify(tampered, "admin") {
		t.Fatal("tampered hash segment must fail verification")
	}
}

func TestVerifyMalformedTokens(t *testing.T) {
	s := New("test-secret")

	cases := []string{
		"",
		"not-base64!!!",
		base64.StdEncoding.EncodeToString([]byte("admin:123")),            // two segments
		base64.StdEncoding.EncodeToString([]byte("admin:notanumber:abc")), // bad timestamp
	}
	for _, tc := range cases {
		if s.Verify(tc, "admin") {
			t.Errorf("malformed token %q should fail closed", tc)
		}
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token := New("secret-a").Issue("admin")
	if New("secret-b").Verify(token, "admin") {
		t.Fatal("token signed with a different secret must not verify")
	}
}
