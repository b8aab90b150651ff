package keywords

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRole is matched by every *InvalidRoleError via errors.Is.
	ErrInvalidRole = errors.New("invalid role")

	// ErrUnknownSectionType is returned when decoding a resume section whose
	// type is outside the closed set.
	ErrUnknownSectionType = errors.New("unknown section type")
)

// InvalidRoleError reports a role name absent from the dictionary.
type InvalidRoleError struct {
	Role  string
	Known []string
}

func (e *InvalidRoleError) Error() string {
	return fmt.Sprintf("invalid role %q (valid: %s)", e.Role, strings.Join(e.Known, ", "))
}

func (e *InvalidRoleError) Is(target error) bool {
	return target == ErrInvalidRole
}
