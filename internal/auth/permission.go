package auth

// Permission is a named capability carried in an access token's scope.
type Permission string

const (
	PermissionProfileRead  Permission = "profile:read"
	PermissionProfileWrite Permission = "profile:write"
	PermissionKeysRead     Permission = "keys:read"
	PermissionKeysWrite    Permission = "keys:write"
	PermissionMessagesRead Permission = "messages:read"
)

// DefaultScope is the fixed permission set granted on login and registration.
var DefaultScope = []Permission{
	PermissionProfileRead,
	PermissionProfileWrite,
	PermissionKeysRead,
	PermissionKeysWrite,
	PermissionMessagesRead,
}
