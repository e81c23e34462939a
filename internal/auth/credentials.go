package auth

import "crypto/subtle"

// CredentialChecker decides whether a username/password pair may obtain a token.
type CredentialChecker interface {
	Verify(username, password string) bool
}

// StaticCredentials accepts exactly one configured pair.
type StaticCredentials struct {
	username string
	password string
}

// NewStaticCredentials builds a checker for the configured pair.
func NewStaticCredentials(username, password string) *StaticCredentials {
	return &StaticCredentials{username: username, password: password}
}

// Verify compares both fields in constant time. An unconfigured checker matches nothing.
func (s *StaticCredentials) Verify(username, password string) bool {
	if s == nil || s.username == "" || s.password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password))
	return userOK&passOK == 1
}
