package pace

import "fmt"

// rgb is a 24-bit terminal color.
type rgb struct {
	r, g, b int
}

// hsvToRGB converts a hue/saturation/value triple (all in [0, 1]) to RGB.
// The BarRenderer uses it to sweep the bar from red through green as the
// percentage climbs.
func hsvToRGB(h, s, v float64) rgb {
	if s < 1e-6 {
		val := int(v * 255)
		return rgb{val, val, val}
	}

	i := int(h * 6.0)
	f := (h * 6.0) - float64(i)
	p := int(255.0 * v * (1.0 - s))
	q := int(255.0 * v * (1.0 - s*f))
	t := int(255.0 * v * (1.0 - s*(1.0-f)))
	vi := int(v * 255)

	switch i % 6 {
	case 0:
		return rgb{vi, t, p}
	case 1:
		return rgb{q, vi, p}
	case 2:
		return rgb{p, vi, t}
	case 3:
		return rgb{p, q, vi}
	case 4:
		return rgb{t, p, vi}
	case 5:
		return rgb{vi, p, q}
	}
	return rgb{}
}

// ansiForeground returns the truecolor escape for c.
func ansiForeground(c rgb) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.r, c.g, c.b)
}

// ansiReset clears all terminal attributes.
const ansiReset = "\033[0m"

// percentColor maps a completion percentage to the gradient color used for
// the bar fill.
func percentColor(pct float64) rgb {
	return hsvToRGB(pct/300.0, 0.8, 1.0)
}
