package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid name", input: "Ana López"},
		{name: "accented characters", input: "José Núñez"},
		{name: "hyphen and apostrophe", input: "O'Brien-Smith"},
		{name: "empty", input: "", wantErr: true},
		{name: "single character", input: "A", wantErr: true},
		{name: "digits", input: "Ana123", wantErr: true},
		{name: "consecutive spaces", input: "Ana  López", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestName_DisplayName(t *testing.T) {
	name, err := NewName("ana maría lópez")
	require.NoError(t, err)
	assert.Equal(t, "Ana María López", name.DisplayName())
}
