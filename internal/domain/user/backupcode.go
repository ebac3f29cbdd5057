package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// BackupCodeBatchSize is the number of recovery codes issued when two-factor
// authentication is confirmed.
const BackupCodeBatchSize = 10

// BackupCode is a single-use recovery credential substituting for a TOTP code.
type BackupCode struct {
	ID     uint
	UserID uint
	Code   string
	Used   bool
}

// GenerateBackupCodes produces a fresh batch of random codes, 8 hex chars
// each.
func GenerateBackupCodes() ([]string, error) {
	codes := make([]string, 0, BackupCodeBatchSize)
	for i := 0; i < BackupCodeBatchSize; i++ {
		b := make([]byte, 4)
		if _, err := rand.Read(b); err != nil {
			return nil, fmt.Errorf("failed to generate backup code: %w", err)
		}
		codes = append(codes, hex.EncodeToString(b))
	}
	return codes, nil
}

// BackupCodeRepository persists backup codes. Consume must be atomic per
// code: check-unused-and-mark-used as one indivisible operation.
type BackupCodeRepository interface {
	// ReplaceForUser wipes any existing batch and stores the new codes.
	ReplaceForUser(ctx context.Context, userID uint, codes []string) error
	// Consume marks the matching unused code as used. Returns false when no
	// unused code matches (unknown or already redeemed).
	Consume(ctx context.Context, userID uint, code string) (bool, error)
	DeleteForUser(ctx context.Context, userID uint) error
	CountUnused(ctx context.Context, userID uint) (int64, error)
}
