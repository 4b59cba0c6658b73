package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bookstore/models"
)

func TestUserStoreCreateAndGet(t *testing.T) {
	users := NewUserStore()
	user := models.NewUser("test@example.com", "hash", "Test User", "123 Test St")

	require.NoError(t, users.Create(user))

	got, err := users.Get("test@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Test User", got.Name)
}

func TestUserStoreRejectsDuplicateEmail(t *testing.T) {
	users := NewUserStore()
	require.NoError(t, users.Create(models.NewUser("test@example.com", "hash", "First", "")))

	err := users.Create(models.NewUser("test@example.com", "hash", "Second", ""))
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserStoreGetUnknown(t *testing.T) {
	users := NewUserStore()
	_, err := users.Get("nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserStoreUpdate(t *testing.T) {
	users := NewUserStore()
	require.NoError(t, users.Create(models.NewUser("test@example.com", "hash", "Old Name", "Old Address")))

	err := users.Update("test@example.com", func(u *models.User) {
		u.Name = "New Name"
		u.Address = "New Address"
	})
	require.NoError(t, err)

	got, err := users.Get("test@example.com")
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, "New Address", got.Address)

	assert.ErrorIs(t, users.Update("nobody@example.com", func(*models.User) {}), ErrUserNotFound)
}
