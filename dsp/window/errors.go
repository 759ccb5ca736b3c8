package window

import (
	"errors"
	"fmt"
)

var errUnknownType = errors.New("window: unknown taper type")

// IsUnknownType reports whether err names an unsupported taper type.
func IsUnknownType(err error) bool {
	return errors.Is(err, errUnknownType)
}

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window: taper length must be > 0: %d", size)
	}
	return nil
}
