package auth

import (
	"fmt"
	"strings"

	"github.com/nezia1/missive/pkg/errors"
)

// Missing returns the required permissions absent from scope.
func Missing(scope, required []Permission) []Permission {
	held := make(map[Permission]struct{}, len(scope))
	for _, p := range scope {
		held[p] = struct{}{}
	}
	var missing []Permission
	for _, p := range required {
		if _, ok := held[p]; !ok {
			missing = append(missing, p)
		}
	}
	return missing
}

// Authorize succeeds only when every required permission is present in scope.
// Partial overlap is a denial.
func Authorize(scope, required []Permission) error {
	missing := Missing(scope, required)
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, len(missing))
	for i, p := range missing {
		names[i] = string(p)
	}
	return errors.Forbidden(fmt.Sprintf(
		"you don't have the required permissions to access this resource (need %s)",
		strings.Join(names, ","),
	))
}
