package usecases

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "sitios/internal/shared/errors"
)

func TestSetPreferenceUseCase(t *testing.T) {
	t.Run("stores valid JSON", func(t *testing.T) {
		prefRepo := new(mockPreferenceRepository)
		prefRepo.On("Upsert", mock.Anything, uint(1), "language", json.RawMessage(`"Spanish"`)).Return(nil)

		uc := NewSetPreferenceUseCase(prefRepo)
		err := uc.Execute(context.Background(), SetPreferenceCommand{UserID: 1, Key: "language", Value: json.RawMessage(`"Spanish"`)})

		require.NoError(t, err)
		prefRepo.AssertExpectations(t)
	})

	tests := []struct {
		name string
		cmd  SetPreferenceCommand
	}{
		{
			name: "empty key",
			cmd:  SetPreferenceCommand{UserID: 1, Key: "", Value: json.RawMessage(`"x"`)},
		},
		{
			name: "key too long",
			cmd:  SetPreferenceCommand{UserID: 1, Key: strings.Repeat("k", 101), Value: json.RawMessage(`"x"`)},
		},
		{
			name: "missing value",
			cmd:  SetPreferenceCommand{UserID: 1, Key: "language"},
		},
		{
			name: "value too large",
			cmd:  SetPreferenceCommand{UserID: 1, Key: "language", Value: json.RawMessage(`"` + strings.Repeat("x", 9000) + `"`)},
		},
		{
			name: "invalid JSON",
			cmd:  SetPreferenceCommand{UserID: 1, Key: "language", Value: json.RawMessage(`{"broken":`)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefRepo := new(mockPreferenceRepository)
			uc := NewSetPreferenceUseCase(prefRepo)

			err := uc.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err))
			prefRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
