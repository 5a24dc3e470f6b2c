// internal/system/errors.go
package system

import (
	"fmt"

	"go-till-dawn/internal/defs"
)

// UnknownEnemyError is returned when a spawn names a type missing from the
// library.
type UnknownEnemyError struct {
	Type defs.EnemyType
}

func (e *UnknownEnemyError) Error() string {
	return fmt.Sprintf("unknown enemy type %q", e.Type)
}
