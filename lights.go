package roomplanner

type AmbientLight struct {
	Color     Color
	Intensity float64
}

// DirectionalLight shines from Position towards the origin.
type DirectionalLight struct {
	Color     Color
	Intensity float64
	Position  Vector3
}

// Lighting is everything that lights a frame.
type Lighting struct {
	Ambient     AmbientLight
	Directional []DirectionalLight
	Points      []PointLight
}

func defaultLighting() Lighting {
	return Lighting{
		Ambient: AmbientLight{Color: 0xffffff, Intensity: 0.5},
		Directional: []DirectionalLight{
			{Color: 0xfff5e0, Intensity: 1.2, Position: Vector3{6, 12, 6}},
			{Color: 0xadd8f7, Intensity: 0.4, Position: Vector3{-5, 5, -5}},
		},
	}
}
