package roomplanner

import "math"

// Fog blends linearly towards Color between Near and Far depth.
type Fog struct {
	Color Color
	Near  float64
	Far   float64
}

type rgb struct{ r, g, b float64 }

func toRGB(c Color) rgb {
	r, g, b := c.Channels()
	return rgb{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

func (c rgb) add(o rgb, f float64) rgb {
	return rgb{c.r + o.r*f, c.g + o.g*f, c.b + o.b*f}
}

func (c rgb) color() Color {
	ch := func(v float64) uint8 {
		return uint8(clampFloat(math.Round(v*255), 0, 255))
	}
	return NewColor(ch(c.r), ch(c.g), ch(c.b))
}

// shade computes a flat Lambert color for a face with world normal n at
// world point p.
func shade(m Material, n, p Vector3, l Lighting) Color {
	light := rgb{}.add(toRGB(l.Ambient.Color), l.Ambient.Intensity)

	for _, d := range l.Directional {
		dir := d.Position.Normalize()
		if ndl := n.Dot(dir); ndl > 0 {
			light = light.add(toRGB(d.Color), d.Intensity*ndl)
		}
	}

	for _, pl := range l.Points {
		toLight := pl.Position.Subtract(p)
		dist := toLight.Length()
		atten := 1.0
		if pl.Distance > 0 {
			if dist >= pl.Distance {
				continue
			}
			atten = 1 - dist/pl.Distance
		}
		if ndl := n.Dot(toLight.Normalize()); ndl > 0 {
			light = light.add(toRGB(pl.Color), pl.Intensity*ndl*atten)
		}
	}

	base := toRGB(m.Color)
	out := rgb{base.r * light.r, base.g * light.g, base.b * light.b}
	if m.EmissiveIntensity > 0 {
		out = out.add(toRGB(m.Emissive), m.EmissiveIntensity)
	}
	return out.color()
}

func (f Fog) apply(c Color, depth float64) Color {
	if f.Far <= f.Near {
		return c
	}
	return Mix(c, f.Color, (depth-f.Near)/(f.Far-f.Near))
}
