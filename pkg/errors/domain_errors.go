package errors

var (
	// Domain errors used in usecase/repository
	ErrUsernameTaken        = AlreadyExists("username is already taken")
	ErrUserNotFound         = NotFound("user not found")
	ErrInvalidUsername      = InvalidArg("username must be 3-32 chars, lowercase letters, numbers and underscores only")
	ErrAuthenticationFailed = Unauthorized("invalid username or password")
	ErrInvalidTotp          = Unauthorized("invalid TOTP code")
	ErrPasswordRequired     = Unauthorized("a valid password is required for this operation")
	ErrUnauthenticated      = Unauthorized("user is not authenticated")
	ErrForbidden            = Forbidden("insufficient permissions")
	ErrInvalidToken         = Unauthorized("invalid token")
	ErrExpiredToken         = Unauthorized("expired token")
	ErrTamperedToken        = Unauthorized("the token has been tampered with")
	ErrRefreshTokenRevoked  = Unauthorized("refresh token has been revoked")
	ErrMalformedPayload     = InvalidArg("malformed payload")
	ErrInvalidDeliveryState = InvalidArg("invalid delivery state")
	ErrSignedPreKeyMissing  = FailedPrecondition("signed prekey not uploaded")
	ErrInvalidSignedPreKey  = InvalidArg("invalid signed prekey")
	ErrInvalidOneTimePreKey = InvalidArg("invalid one-time prekey")
	ErrStoreUnavailable     = Unavailable("our servers encountered an unexpected error, we apologize for the inconvenience")
)

func ErrRegistrationFailed(cause error) error {
	return Wrap(CodeInternal, "registration failed", cause)
}
