package utils

import "crypto/ed25519"

// VerifySignedPreKey checks that the signed prekey was signed by the owner's
// identity key.
func VerifySignedPreKey(identityPubKey, signedPreKey, signature []byte) bool {
	if len(identityPubKey) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(identityPubKey, signedPreKey, signature)
}
