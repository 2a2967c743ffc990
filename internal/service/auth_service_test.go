package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow-go/internal/apperr"
	"github.com/fleetflow/fleetflow-go/internal/models"
	"github.com/fleetflow/fleetflow-go/pkg/auth"
)

func TestRegisterAndLogin(t *testing.T) {
	e := newEnv(t)

	user, err := e.auth.Register(models.RegisterInput{
		Name:     "Ops Manager",
		Email:    "Ops@Fleet.IO",
		Password: "secret1",
		Role:     "manager",
	})
	require.NoError(t, err)
	assert.Equal(t, "ops@fleet.io", user.Email)

	result, err := e.auth.Login(models.LoginInput{Email: "ops@fleet.io", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, user.ID, result.User.ID)
	assert.Equal(t, "manager", result.User.Role)

	claims, err := auth.ParseToken("test-secret", result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "ops@fleet.io", claims.Email)
	assert.Equal(t, "manager", claims.Role)
}

func TestLoginFailures(t *testing.T) {
	e := newEnv(t)

	_, err := e.auth.Register(models.RegisterInput{
		Name: "Ops", Email: "ops@fleet.io", Password: "secret1", Role: "dispatcher",
	})
	require.NoError(t, err)

	t.Run("missing fields", func(t *testing.T) {
		_, err := e.auth.Login(models.LoginInput{Email: "ops@fleet.io"})
		require.Error(t, err)
		assert.EqualError(t, err, "Email and password required")
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := e.auth.Login(models.LoginInput{Email: "ops@fleet.io", Password: "wrong"})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.Unauthorized))
		assert.EqualError(t, err, "Invalid credentials")
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := e.auth.Login(models.LoginInput{Email: "nobody@fleet.io", Password: "secret1"})
		require.Error(t, err)
		assert.EqualError(t, err, "Invalid credentials")
	})
}

func TestRegisterConflict(t *testing.T) {
	e := newEnv(t)

	_, err := e.auth.Register(models.RegisterInput{
		Name: "A", Email: "dup@fleet.io", Password: "secret1", Role: "analyst",
	})
	require.NoError(t, err)

	_, err = e.auth.Register(models.RegisterInput{
		Name: "B", Email: "DUP@fleet.io", Password: "secret2", Role: "analyst",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Conflict))
	assert.EqualError(t, err, "An account with this email already exists")
}
