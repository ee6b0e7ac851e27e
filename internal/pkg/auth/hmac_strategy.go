package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HMACStrategy implements token creation/verification using raw HMAC
// signatures over a compact payload. Kept as a lighter alternative to the
// JWT strategy, selectable via configuration.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken generates signed auth token for the user.
func (s *HMACStrategy) IssueToken(userID int64, email string) (string, error) {
	expires := time.Now().Add(s.ttl).Unix()
	payload := fmt.Sprintf("%d|%s|%d", userID, email, expires)
	sig := s.sign(payload)
	token := fmt.Sprintf("%s|%s", payload, sig)
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken validates token and returns the encoded identity. The email
// segment may itself contain the separator (it is legal in an address local
// part), so the user id is read from the front, the signature and expiry
// from the back, and the email is whatever remains between them.
func (s *HMACStrategy) ParseToken(token string) (*Claims, error) {
	rawBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	raw := string(rawBytes)

	sigIdx := strings.LastIndex(raw, "|")
	if sigIdx < 0 {
		return nil, ErrInvalidToken
	}
	payload, sig := raw[:sigIdx], raw[sigIdx+1:]
	if !hmac.Equal([]byte(s.sign(payload)), []byte(sig)) {
		return nil, ErrInvalidToken
	}

	idIdx := strings.Index(payload, "|")
	expIdx := strings.LastIndex(payload, "|")
	if idIdx < 0 || expIdx == idIdx {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(payload[:idIdx], 10, 64)
	if err != nil || userID <= 0 {
		return nil, ErrInvalidToken
	}

	expires, err := strconv.ParseInt(payload[expIdx+1:], 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if time.Unix(expires, 0).Before(time.Now()) {
		return nil, ErrInvalidToken
	}

	return &Claims{UserID: userID, Email: payload[idIdx+1 : expIdx]}, nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
