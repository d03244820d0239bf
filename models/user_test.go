package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSetPasswordHashes(t *testing.T) {
	u := &User{}
	require.NoError(t, u.SetPassword("secret123"))

	assert.NotEqual(t, "secret123", u.Password)
	assert.NotContains(t, u.Password, "secret123")
	assert.True(t, u.ComparePassword("secret123"))
	assert.False(t, u.ComparePassword("secret124"))
	assert.False(t, u.ComparePassword(""))
}

func TestSetPasswordProducesDistinctHashes(t *testing.T) {
	a, b := &User{}, &User{}
	require.NoError(t, a.SetPassword("secret123"))
	require.NoError(t, b.SetPassword("secret123"))

	// bcrypt salts per call
	assert.NotEqual(t, a.Password, b.Password)
}

func TestSummaryNeverExposesPassword(t *testing.T) {
	u := &User{
		ID:       primitive.NewObjectID(),
		Username: "alice",
		Email:    "alice@example.com",
	}
	require.NoError(t, u.SetPassword("secret123"))

	s := u.Summary()
	assert.Equal(t, u.ID.Hex(), s.ID)
	assert.Equal(t, "alice", s.Name)
	assert.Equal(t, "alice", s.Username)
	assert.Equal(t, "alice@example.com", s.Email)
}
