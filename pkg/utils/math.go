// pkg/utils/math.go
package utils

// Clamp ограничивает x диапазоном [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Approach сдвигает current к target не больше чем на step и не перескакивает цель.
func Approach(current, target, step float64) float64 {
	if current > target {
		current -= step
		if current < target {
			return target
		}
		return current
	}
	current += step
	if current > target {
		return target
	}
	return current
}
