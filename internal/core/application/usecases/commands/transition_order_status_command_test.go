package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderStatusCommand_ValidInput(t *testing.T) {
	// Arrange & Act
	cmd, err := commands.NewTransitionOrderStatusCommand("AB12CD34EF", "OUT_FOR_DELIVERY")

	// Assert
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "AB12CD34EF", cmd.Number().String())
	assert.Equal(t, order.OutForDelivery, cmd.Status())
}

func TestNewTransitionOrderStatusCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		number string
		status string
	}{
		{"empty number", "", "CONFIRMED"},
		{"lowercase number", "ab12", "CONFIRMED"},
		{"unknown status", "AB12", "SHIPPED"},
		{"lowercase status", "AB12", "confirmed"},
		{"empty status", "AB12", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewTransitionOrderStatusCommand(tt.number, tt.status)

			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
		})
	}
}

func TestTransitionOrderStatusCommand_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	var cmd commands.TransitionOrderStatusCommand

	err := cmd.Validate()

	assert.Equal(t, commands.ErrTransitionOrderStatusCommandIsNotConstructed, err)
}
