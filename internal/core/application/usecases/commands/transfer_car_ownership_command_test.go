package commands_test

import (
	"testing"

	"autoshop/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransferCarOwnershipCommand_Success(t *testing.T) {
	cmd, err := commands.NewTransferCarOwnershipCommand(10, 1, 2)

	require.NoError(t, err)
	assert.Equal(t, int64(10), cmd.CarID())
	assert.Equal(t, int64(1), cmd.FromUserID())
	assert.Equal(t, int64(2), cmd.ToUserID())
	assert.NoError(t, cmd.Validate())
}

func TestNewTransferCarOwnershipCommand_InvalidIdentifiers(t *testing.T) {
	tests := []struct {
		name    string
		carID   int64
		from    int64
		to      int64
		wantErr error
	}{
		{"zero car id", 0, 1, 2, commands.ErrCarIDIsInvalid},
		{"zero from user", 10, 0, 2, commands.ErrFromUserIDIsInvalid},
		{"negative to user", 10, 1, -1, commands.ErrToUserIDIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewTransferCarOwnershipCommand(tt.carID, tt.from, tt.to)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransferCarOwnershipCommand_ValidateNotConstructed(t *testing.T) {
	var cmd commands.TransferCarOwnershipCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTransferCarOwnershipCommandIsNotConstructed)
}
