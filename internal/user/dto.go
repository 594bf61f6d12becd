package user

import (
	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// NOTE: DTOs travel from usecase to handler

type RegisterCommand struct {
	Username          string
	Password          string
	NotificationToken string
	IdentityKey       []byte
	RegistrationID    uint32
}

type UpdateProfileCommand struct {
	// EnableTotp requires Password to be set and correct.
	EnableTotp        bool
	Password          string
	NotificationToken *string
}

type SignedPreKeyUpload struct {
	KeyID     uint32
	PublicKey []byte
	Signature []byte // signed by identity Ed25519 private key
}

type OneTimePreKeyUpload struct {
	KeyID     uint32
	PublicKey []byte
}

type PublishBundleCommand struct {
	IdentityKey    []byte
	RegistrationID uint32
	SignedPreKey   *SignedPreKeyUpload
	OneTimePreKeys []OneTimePreKeyUpload // can be empty
}

// Output DTOs

type ProfileDTO struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"name"`
	TotpEnabled bool      `json:"totpEnabled"`
}

type UpdateProfileResult struct {
	// TotpURL is only set right after TOTP enablement, so the client can show
	// the enrollment QR code once. It is never served again.
	TotpURL string
}

type PreKeyBundleDTO struct {
	IdentityKey           []byte  `json:"identityKey"`
	RegistrationID        uint32  `json:"registrationId"`
	SignedPreKeyID        uint32  `json:"signedPreKeyId"`
	SignedPreKey          []byte  `json:"signedPreKey"`
	SignedPreKeySignature []byte  `json:"signedPreKeySignature"`
	OneTimePreKeyID       *uint32 `json:"oneTimePreKeyId,omitempty"`
	OneTimePreKey         []byte  `json:"oneTimePreKey,omitempty"`
}
