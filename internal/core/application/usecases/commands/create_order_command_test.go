package commands_test

import (
	"testing"

	"rentops/internal/core/application/usecases/commands"
	"rentops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should create a valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), testDetails())
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("should reject missing contact name", func(t *testing.T) {
		details := testDetails()
		details.ContactName = ""
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), details)
		require.ErrorIs(t, err, commands.ErrContactNameIsRequired)
	})

	t.Run("should reject missing contact email", func(t *testing.T) {
		details := testDetails()
		details.ContactEmail = ""
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), details)
		require.ErrorIs(t, err, commands.ErrContactEmailIsRequired)
	})

	t.Run("should reject missing venue name", func(t *testing.T) {
		details := testDetails()
		details.VenueName = ""
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), details)
		require.ErrorIs(t, err, commands.ErrVenueNameIsRequired)
	})

	t.Run("should reject an invalid order id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), testDetails())
		require.Error(t, err)
	})

	t.Run("should fail validation on zero value", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
