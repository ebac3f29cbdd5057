package usecases

// TokenIssuer signs bearer tokens binding a user to a session.
type TokenIssuer interface {
	Issue(userID uint, sessionID string) (string, error)
	ExpMinutes() int
}

// TwoFactorProvisioning is the enrollment material handed to the client.
type TwoFactorProvisioning struct {
	Secret       string
	OtpauthURL   string
	QRCodeBase64 string
}

// TwoFactorService generates and validates time-based one-time passwords.
type TwoFactorService interface {
	GenerateKey(accountName string) (*TwoFactorProvisioning, error)
	Validate(code, secret string) bool
}
