// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Pulse отображает синусоиду по t на отрезок [lo, hi].
func Pulse(t, rate, lo, hi float64) float64 {
	return lo + (hi-lo)*(0.5+0.5*math.Sin(t*rate))
}
