package user_test

import (
	"testing"

	"autoshop/internal/core/domain/model/user"
	"autoshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreUser(t *testing.T) {
	u, err := user.RestoreUser(1, "alice@example.com")

	require.NoError(t, err)
	require.NoError(t, u.Validate())
	assert.Equal(t, int64(1), u.ID())
	assert.Equal(t, "alice@example.com", u.Email())
}

func TestRestoreUser_Invalid(t *testing.T) {
	t.Run("non-positive id", func(t *testing.T) {
		_, err := user.RestoreUser(0, "alice@example.com")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty email", func(t *testing.T) {
		_, err := user.RestoreUser(1, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUser_Validate_ZeroValue(t *testing.T) {
	var u user.User

	require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
}
