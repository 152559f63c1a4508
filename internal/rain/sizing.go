package rain

import "math"

// Drops per terminal column in each mode.
const (
	SlowDensity = 0.75
	FastDensity = 1.5
)

// TargetCount returns how many drops a width x height terminal gets and
// whether they fall in slow mode. Short-and-wide or small terminals are slow.
func TargetCount(width, height int) (count int, slow bool) {
	if (height < 20 && width > 100) || (width < 100 && height < 40) {
		return int(math.Round(float64(width) * SlowDensity)), true
	}
	return int(math.Round(float64(width) * FastDensity)), false
}
