package galaxy

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BlackBodyColor approximates the apparent color of a black-body
// radiator at the given temperature in Kelvin, usable from warm dust
// (~1000 K) up through hot O-type stars (~40000 K). Temperatures
// outside that range are clamped to its ends.
func BlackBodyColor(kelvin float64) rl.Color {
	if kelvin < 1000 {
		kelvin = 1000
	} else if kelvin > 40000 {
		kelvin = 40000
	}
	t := kelvin / 100

	var r, g, b float64
	if t <= 66 {
		r = 255
		g = 99.4708025861*math.Log(t) - 161.1195681661
		if t <= 19 {
			b = 0
		} else {
			b = 138.5177312231*math.Log(t-10) - 305.0447927307
		}
	} else {
		r = 329.698727446 * math.Pow(t-60, -0.1332047592)
		g = 288.1221695283 * math.Pow(t-60, -0.0755148492)
		b = 255
	}
	return rl.NewColor(clampChannel(r), clampChannel(g), clampChannel(b), 255)
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
