package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticCredentials_Verify(t *testing.T) {
	creds := NewStaticCredentials("alice", "wonderland")

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{name: "match", username: "alice", password: "wonderland", want: true},
		{name: "wrong password", username: "alice", password: "wonderlan", want: false},
		{name: "wrong username", username: "alic", password: "wonderland", want: false},
		{name: "swapped", username: "wonderland", password: "alice", want: false},
		{name: "case sensitive", username: "Alice", password: "wonderland", want: false},
		{name: "empty", username: "", password: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, creds.Verify(tt.username, tt.password))
		})
	}
}

func TestStaticCredentials_Unconfigured(t *testing.T) {
	var nilCreds *StaticCredentials
	assert.False(t, nilCreds.Verify("", ""))
	assert.False(t, NewStaticCredentials("", "").Verify("", ""))
}
