package user

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBackupCodes(t *testing.T) {
	codes, err := GenerateBackupCodes()
	require.NoError(t, err)
	require.Len(t, codes, BackupCodeBatchSize)

	seen := make(map[string]bool, len(codes))
	for _, code := range codes {
		assert.Len(t, code, 8)
		_, err := hex.DecodeString(code)
		assert.NoError(t, err, "code %q should be hex", code)
		seen[code] = true
	}
	assert.Len(t, seen, BackupCodeBatchSize, "codes within a batch should not repeat")
}
