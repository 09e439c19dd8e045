// Package authtoken implements the self-contained admin session token: a
// base64-encoded "username:timestampMillis:hexHMAC" string signed with
// HMAC-SHA256. There is no server-side session storage; the token alone proves
// a login happened within the last 24 hours.
package authtoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CookieName is the cookie the admin session token travels in.
const CookieName = "careon_admin_token"

// TTL bounds how long an issued token verifies. Logout only clears the cookie
// client-side; a captured token stays valid until this window closes.
const TTL = 24 * time.Hour

// Scheme issues and verifies admin session tokens for a single secret key.
type Scheme struct {
	secret []byte
	now    func() time.Time
}

// New creates a token scheme signing with the given secret.
func New(secret string) *Scheme {
	return &Scheme{secret: []byte(secret), now: time.Now}
}

// Issue creates a token for username stamped with the current time.
func (s *Scheme) Issue(username string) string {
	payload := fmt.Sprintf("%s:%d", username, s.now().UnixMilli())
	return base64.StdEncoding.EncodeToString([]byte(payload + ":" + s.sign(payload)))
}

// Verify reports whether token is a currently valid session for username.
// It fails closed: malformed base64, a payload that does not split into three
// segments, an age beyond TTL, an HMAC mismatch, or a foreign username all
// return false with no indication of which check tripped.
func (s *Scheme) Verify(token, username string) bool {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return false
	}
	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 {
		return false
	}
	if parts[0] != username {
		return false
	}
	millis, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return false
	}
	if s.now().Sub(time.UnixMilli(millis)) > TTL {
		return false
	}
	expected := s.sign(parts[0] + ":" + parts[1])
	return hmac.Equal([]byte(expected), []byte(parts[2]))
}

func (s *Scheme) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
