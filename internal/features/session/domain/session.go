package domain

import (
	"errors"
	"strings"
	"time"
)

// Source records who installed the session credential.
type Source string

const (
	SourceConfig Source = "config"
	SourceAPI    Source = "api"
)

var (
	ErrTokenRequired = errors.New("token is required")
	ErrInvalidTTL    = errors.New("ttl must not be negative")
)

// Session holds the bearer credential sent to the order service.
type Session struct {
	Token      string    `json:"token"`
	Source     Source    `json:"source"`
	TTLSeconds int       `json:"ttl_seconds,omitempty"` // 0 means no expiry.
	CreatedAt  time.Time `json:"created_at"`
}

// NewSession creates a new Session and validates it.
func NewSession(token string, source Source, ttlSeconds int) (*Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrTokenRequired
	}
	if ttlSeconds < 0 {
		return nil, ErrInvalidTTL
	}

	return &Session{
		Token:      token,
		Source:     source,
		TTLSeconds: ttlSeconds,
		CreatedAt:  time.Now(),
	}, nil
}

// TTL returns the session lifetime. Zero means no expiry.
func (s *Session) TTL() time.Duration {
	return time.Duration(s.TTLSeconds) * time.Second
}

// ExpiresAt returns when the session lapses, or nil if it never does.
func (s *Session) ExpiresAt() *time.Time {
	if s.TTLSeconds == 0 {
		return nil
	}
	t := s.CreatedAt.Add(s.TTL())
	return &t
}

// MaskedToken returns the token with everything but its last four characters hidden.
func (s *Session) MaskedToken() string {
	const visible = 4
	runes := []rune(s.Token)
	if len(runes) <= visible {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-visible) + string(runes[len(runes)-visible:])
}
