package user

import (
	"fmt"
	"time"

	"sitios/internal/domain/user/valueobjects"
	"sitios/internal/shared/authorization"
	"sitios/internal/shared/biztime"
)

// PasswordHasher is the one-way hash contract the aggregate depends on.
// Implementations must salt per call; plaintext never leaves the call.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// User is the aggregate root for identity. Two-factor state follows the
// machine DISABLED -> PENDING_SETUP -> ENABLED, where PENDING_SETUP means a
// secret is stored but the enabled flag is still false.
type User struct {
	id               uint
	email            *valueobjects.Email
	name             *valueobjects.Name
	role             authorization.UserRole
	passwordHash     string
	twoFactorSecret  *string
	twoFactorEnabled bool
	createdAt        time.Time
	updatedAt        time.Time
}

// NewUser creates a new user aggregate with the default USER role.
func NewUser(email *valueobjects.Email, name *valueobjects.Name) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == nil {
		return nil, fmt.Errorf("name is required")
	}

	now := biztime.NowUTC()
	return &User{
		email:     email,
		name:      name,
		role:      authorization.RoleUser,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence.
func ReconstructUser(
	id uint,
	email *valueobjects.Email,
	name *valueobjects.Name,
	role authorization.UserRole,
	passwordHash string,
	twoFactorSecret *string,
	twoFactorEnabled bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == nil {
		return nil, fmt.Errorf("name is required")
	}
	if twoFactorEnabled && twoFactorSecret == nil {
		return nil, fmt.Errorf("two-factor enabled without a secret")
	}

	return &User{
		id:               id,
		email:            email,
		name:             name,
		role:             role,
		passwordHash:     passwordHash,
		twoFactorSecret:  twoFactorSecret,
		twoFactorEnabled: twoFactorEnabled,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

// SetID sets the ID after the persistence layer assigned one.
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) Email() *valueobjects.Email {
	return u.email
}

func (u *User) Name() *valueobjects.Name {
	return u.name
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) TwoFactorSecret() *string {
	return u.twoFactorSecret
}

func (u *User) TwoFactorEnabled() bool {
	return u.twoFactorEnabled
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// SetPassword hashes and stores the password.
func (u *User) SetPassword(password *valueobjects.Password, hasher PasswordHasher) error {
	if password == nil {
		return fmt.Errorf("password is required")
	}
	hash, err := hasher.Hash(password.String())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.passwordHash = hash
	u.updatedAt = biztime.NowUTC()
	return nil
}

// VerifyPassword checks the plaintext against the stored hash.
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("no password set")
	}
	return hasher.Verify(password, u.passwordHash)
}

// Rename updates the user's display name.
func (u *User) Rename(name *valueobjects.Name) error {
	if name == nil {
		return fmt.Errorf("name is required")
	}
	u.name = name
	u.updatedAt = biztime.NowUTC()
	return nil
}

// PromoteToAdmin grants the ADMIN role.
func (u *User) PromoteToAdmin() {
	u.role = authorization.RoleAdmin
	u.updatedAt = biztime.NowUTC()
}

// StageTwoFactorSecret stores a pending shared secret (PENDING_SETUP).
// Re-staging before confirmation overwrites the previous pending secret.
func (u *User) StageTwoFactorSecret(secret string) error {
	if u.twoFactorEnabled {
		return ErrTwoFactorAlreadyEnabled()
	}
	if secret == "" {
		return fmt.Errorf("secret cannot be empty")
	}
	u.twoFactorSecret = &secret
	u.updatedAt = biztime.NowUTC()
	return nil
}

// ConfirmTwoFactor flips the enabled flag once the pending secret has been
// verified. The secret must already be staged.
func (u *User) ConfirmTwoFactor() error {
	if u.twoFactorEnabled {
		return ErrTwoFactorAlreadyEnabled()
	}
	if u.twoFactorSecret == nil {
		return ErrTwoFactorNotConfigured()
	}
	u.twoFactorEnabled = true
	u.updatedAt = biztime.NowUTC()
	return nil
}

// DisableTwoFactor clears the secret and the flag. Idempotent.
func (u *User) DisableTwoFactor() {
	u.twoFactorSecret = nil
	u.twoFactorEnabled = false
	u.updatedAt = biztime.NowUTC()
}

// DisplayInfo is the sanitized projection returned to clients. It never
// contains the password hash or the two-factor secret.
type DisplayInfo struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) GetDisplayInfo() DisplayInfo {
	return DisplayInfo{
		ID:        u.id,
		Email:     u.email.String(),
		Name:      u.name.String(),
		Role:      u.role.String(),
		CreatedAt: u.createdAt,
		UpdatedAt: u.updatedAt,
	}
}
