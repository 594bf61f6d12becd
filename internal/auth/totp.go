package auth

import (
	"github.com/pkg/errors"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// GenerateTotp creates a fresh 6-digit, 30-second-step TOTP enrollment for
// the given account. The returned otpauth URL is what gets persisted on the
// user record (it carries the secret).
func GenerateTotp(issuer, accountName string) (*otp.Key, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: accountName,
		Period:      30,
		SecretSize:  32,
		Digits:      otp.DigitsSix,
	})
	if err != nil {
		return nil, errors.Wrap(err, "auth.GenerateTotp")
	}
	return key, nil
}

// ValidateTotp checks a submitted code against the secret stored in the
// user's otpauth URL, with the standard one-step drift tolerance.
func ValidateTotp(totpURL, code string) (bool, error) {
	key, err := otp.NewKeyFromURL(totpURL)
	if err != nil {
		return false, errors.Wrap(err, "auth.ValidateTotp.ParseURL")
	}
	return totp.Validate(code, key.Secret()), nil
}
