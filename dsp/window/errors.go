package window

import (
	"errors"
	"fmt"
)

var errUnknownType = errors.New("window: unknown type")

func unknownType(name string) error {
	return fmt.Errorf("%w %q", errUnknownType, name)
}
