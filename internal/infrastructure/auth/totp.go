package auth

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// TOTPService wraps time-step one-time-password generation and validation
// (30-second step, one step of skew tolerance, the library defaults).
type TOTPService struct {
	issuer string
}

func NewTOTPService(issuer string) *TOTPService {
	if issuer == "" {
		issuer = "Sitios"
	}
	return &TOTPService{issuer: issuer}
}

// ProvisioningKey holds everything the client needs to enroll an
// authenticator: the raw secret, the otpauth URI and a scannable QR image.
type ProvisioningKey struct {
	Secret       string
	OtpauthURL   string
	QRCodeBase64 string
}

// GenerateKey creates a fresh shared secret for the account.
func (s *TOTPService) GenerateKey(accountName string) (*ProvisioningKey, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.issuer,
		AccountName: accountName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	qr, err := qrCodePNG(key)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}

	return &ProvisioningKey{
		Secret:       key.Secret(),
		OtpauthURL:   key.URL(),
		QRCodeBase64: qr,
	}, nil
}

// Validate checks a submitted code against the shared secret for the current
// time step.
func (s *TOTPService) Validate(code, secret string) bool {
	return totp.Validate(code, secret)
}

// qrCodePNG renders the key as a base64-encoded PNG.
func qrCodePNG(key *otp.Key) (string, error) {
	img, err := key.Image(200, 200)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
