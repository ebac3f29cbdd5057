package user

import (
	"context"
	"encoding/json"
)

// Preference is one user setting. Values are arbitrary JSON so clients can
// store structured settings (notification maps, security options).
type Preference struct {
	ID     uint
	UserID uint
	Key    string
	Value  json.RawMessage
}

// DefaultPreferences returns the preference set seeded at registration.
func DefaultPreferences() map[string]any {
	return map[string]any{
		"themePreference": "System",
		"language":        "Spanish",
		"timezone":        "America/Bogota",
		"notificationPreferences": map[string]any{
			"emailNotifications": true,
			"pushNotifications":  true,
			"marketingEmails":    false,
		},
		"securityOptions": map[string]any{
			"twoFactorAuthentication": false,
			"loginAlerts":             true,
		},
	}
}

// PreferenceRepository persists user preferences.
type PreferenceRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]*Preference, error)
	Get(ctx context.Context, userID uint, key string) (*Preference, error)
	Upsert(ctx context.Context, userID uint, key string, value json.RawMessage) error
	Delete(ctx context.Context, userID uint, key string) error
	DeleteAllForUser(ctx context.Context, userID uint) error
	CountByUser(ctx context.Context, userID uint) (int64, error)
}
