package commands_test

import (
	"errors"
	"testing"
	"time"

	"autoshop/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPurgeDeletedOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPurgeDeletedOrdersCommand(24 * time.Hour)
	require.NoError(t, err)

	uow := NewUnitOfWork()
	factory := new(OrderUoWFactory)

	factory.On("Create", ctx).Return(uow, nil).Once()
	uow.orders.On("PurgeDeleted", ctx, mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			cutoff := args.Get(1).(time.Time)
			assert.WithinDuration(t, time.Now().UTC().Add(-24*time.Hour), cutoff, time.Minute)
		}).Return(int64(3), nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewPurgeDeletedOrdersCommandHandler(factory)
	purged, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(3), purged)
	factory.AssertExpectations(t)
	uow.assertExpectations(t)
}

func TestPurgeDeletedOrdersCommandHandler_Handle_RepositoryErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPurgeDeletedOrdersCommand(24 * time.Hour)
	require.NoError(t, err)

	uow := NewUnitOfWork()
	factory := new(OrderUoWFactory)

	factory.On("Create", ctx).Return(uow, nil).Once()
	uow.orders.On("PurgeDeleted", ctx, mock.AnythingOfType("time.Time")).
		Return(int64(0), errors.New("deadlock detected")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewPurgeDeletedOrdersCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock detected")
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.assertExpectations(t)
}

func TestPurgeDeletedOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(OrderUoWFactory)

	handler := commands.NewPurgeDeletedOrdersCommandHandler(factory)
	_, err := handler.Handle(ctx, commands.PurgeDeletedOrdersCommand{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be created via NewPurgeDeletedOrdersCommand constructor")
	factory.AssertNotCalled(t, "Create")
}
