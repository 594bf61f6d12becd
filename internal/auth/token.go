package auth

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/nezia1/missive/config"
	appErrors "github.com/nezia1/missive/pkg/errors"
)

// Claims is the payload of every token this server mints. Access tokens
// carry a scope; refresh tokens do not.
type Claims struct {
	Scope []Permission `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// Signer mints and verifies EdDSA-signed tokens. Verification only needs the
// public half, so components that never mint (the router, the key-exchange
// paths) can hold a verify-only view.
type Signer struct {
	priv       ed25519.PrivateKey
	pub        ed25519.PublicKey
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func NewSigner(priv ed25519.PrivateKey, accessTTL, refreshTTL time.Duration) *Signer {
	return &Signer{
		priv:       priv,
		pub:        priv.Public().(ed25519.PublicKey),
		AccessTTL:  accessTTL,
		RefreshTTL: refreshTTL,
	}
}

func NewSignerFromConfig(cfg *config.Config) (*Signer, error) {
	priv, err := LoadSigningKey(cfg.Auth.PrivateKeyPath)
	if err != nil {
		return nil, err
	}
	return NewSigner(
		priv,
		time.Duration(cfg.Auth.AccessTTLMinutes)*time.Minute,
		time.Duration(cfg.Auth.RefreshTTLDays)*24*time.Hour,
	), nil
}

// LoadSigningKey reads a PKCS#8 PEM Ed25519 private key.
func LoadSigningKey(path string) (ed25519.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "auth.LoadSigningKey.ReadFile")
	}
	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, errors.New("no PEM block in signing key file")
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, errors.Wrap(err, "auth.LoadSigningKey.ParsePKCS8")
	}
	priv, ok := parsed.(ed25519.PrivateKey)
	if !ok {
		return nil, errors.New("signing key is not Ed25519")
	}
	return priv, nil
}

// GenerateSigningKey creates an ephemeral Ed25519 key, for tests and local
// development.
func GenerateSigningKey() (ed25519.PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	return priv, err
}

func (s *Signer) SignAccess(subject uuid.UUID, scope []Permission) (string, error) {
	now := time.Now()
	claims := Claims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.AccessTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(s.priv)
}

func (s *Signer) SignRefresh(subject uuid.UUID) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.RefreshTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(s.priv)
}

// Verify checks signature and expiry without any store access. The three
// failure kinds map to different user-facing messages.
func (s *Signer) Verify(token string) (*Claims, error) {
	claims := new(Claims)
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.pub, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, appErrors.ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, appErrors.ErrTamperedToken
		default:
			return nil, appErrors.ErrInvalidToken
		}
	}
	return claims, nil
}

// HashToken is the fingerprint under which refresh tokens are persisted, so
// a database leak does not leak usable credentials.
func HashToken(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return sum[:]
}
