// internal/component/drop.go
package component

import (
	"go-till-dawn/internal/defs"
	"go-till-dawn/pkg/geom"
)

// Drop описывает предмет, выпавший из врага. Alpha и Rotation чисто визуальные.
type Drop struct {
	Type     defs.DropType
	Position geom.Vec2
	Active   bool
	Alpha    float64
	Rotation float64 // в градусах
}
