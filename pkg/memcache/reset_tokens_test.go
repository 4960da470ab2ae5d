package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsumeIsSingleUse(t *testing.T) {
	s := NewResetTokens()
	s.Set("tok", "ana@example.com", time.Minute)

	assert.Equal(t, "ana@example.com", s.Consume("tok"))
	assert.Equal(t, "", s.Consume("tok"))
}

func TestConsumeExpiredToken(t *testing.T) {
	s := NewResetTokens()
	s.Set("tok", "ana@example.com", -time.Second)

	assert.Equal(t, "", s.Consume("tok"))
}

func TestPeekDoesNotConsume(t *testing.T) {
	s := NewResetTokens()
	s.Set("tok", "ana@example.com", time.Minute)

	email, ok := s.Peek("tok")
	assert.True(t, ok)
	assert.Equal(t, "ana@example.com", email)

	assert.Equal(t, "ana@example.com", s.Consume("tok"))
}
