package roomplanner

import "testing"

func TestParseArchetype(t *testing.T) {
	testCases := []struct {
		id   string
		want Archetype
	}{
		{"sofa", Sofa},
		{"table", Table},
		{"mesa", Table},
		{"silla", Chair},
		{"cama", Bed},
		{"lampara", Lamp},
		{"estanteria", Shelf},
		{" Shelf ", Shelf},
		{"LAMP", Lamp},
		{"wardrobe", Fallback},
		{"", Fallback},
	}
	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			if got := ParseArchetype(tc.id); got != tc.want {
				t.Errorf("ParseArchetype(%q) = %v, want %v", tc.id, got, tc.want)
			}
		})
	}
}

func countParts(c *Composite, name string) int {
	n := 0
	for _, p := range c.Parts {
		if p.Name == name {
			n++
		}
	}
	return n
}

func TestFactoryBuild(t *testing.T) {
	testCases := []struct {
		archetype Archetype
		parts     int
		lights    int
	}{
		{Sofa, 9, 0},
		{Table, 5, 0},
		{Chair, 6, 0},
		{Bed, 6, 0},
		{Lamp, 4, 1},
		{Shelf, 22, 0},
		{Fallback, 1, 0},
		{Archetype(99), 1, 0},
	}
	f := NewFactory(1)
	for _, tc := range testCases {
		t.Run(tc.archetype.String(), func(t *testing.T) {
			c := f.Build(tc.archetype, 0x336699)
			if len(c.Parts) != tc.parts {
				t.Errorf("parts = %d, want %d", len(c.Parts), tc.parts)
			}
			if len(c.Lights) != tc.lights {
				t.Errorf("lights = %d, want %d", len(c.Lights), tc.lights)
			}
			seen := make(map[PartID]bool)
			for _, p := range c.Parts {
				if !p.CastShadow || !p.ReceiveShadow {
					t.Errorf("part %s does not take part in shadows", p.Name)
				}
				if seen[p.ID] {
					t.Errorf("duplicate part id %v", p.ID)
				}
				seen[p.ID] = true
				if min, _ := p.Mesh.Bounds(); min.Y < -1e-9 {
					t.Errorf("part %s dips below the floor: %v", p.Name, min.Y)
				}
			}
		})
	}
}

func TestFactoryColors(t *testing.T) {
	f := NewFactory(1)
	base := Color(0x8b5a2b)

	table := f.Build(Table, base)
	for _, p := range table.Parts {
		want := base
		if p.Name == "leg" {
			want = Darken(base, 0.2)
		}
		if p.Material.Color != want {
			t.Errorf("table %s color = %06x, want %06x", p.Name, uint32(p.Material.Color), uint32(want))
		}
	}

	sofa := f.Build(Sofa, base)
	if n := countParts(sofa, "cushion"); n != 3 {
		t.Errorf("sofa cushions = %d, want 3", n)
	}
	for _, p := range sofa.Parts {
		if p.Name == "leg" && p.Material.Color != sofaLegColor {
			t.Errorf("sofa leg color = %06x", uint32(p.Material.Color))
		}
		if p.Name == "cushion" && p.Material.Color != Lighten(base, 0.3) {
			t.Errorf("cushion color = %06x", uint32(p.Material.Color))
		}
	}

	bed := f.Build(Bed, base)
	for _, p := range bed.Parts {
		if p.Name == "pillow" && p.Material.Color != WhiteColor {
			t.Errorf("pillow color = %06x", uint32(p.Material.Color))
		}
		if p.Name == "mattress" && p.Material.Color != Lighten(base, 0.5) {
			t.Errorf("mattress color = %06x", uint32(p.Material.Color))
		}
	}
}

func TestLampShadeIsDoubleSided(t *testing.T) {
	lamp := NewFactory(1).Build(Lamp, 0xffffff)
	for _, p := range lamp.Parts {
		if got, want := p.Material.DoubleSided, p.Name == "shade"; got != want {
			t.Errorf("%s DoubleSided = %v, want %v", p.Name, got, want)
		}
	}
	l := lamp.Lights[0]
	if l.Color != bulbColor || l.Intensity != 0.8 || l.Distance != 5 {
		t.Errorf("lamp light = %+v", l)
	}
	if !almostEqualVector(l.Position, Vector3{0, 1.55, 0}) {
		t.Errorf("lamp light position = %v", l.Position)
	}
}

func books(c *Composite) []*Part {
	var out []*Part
	for _, p := range c.Parts {
		if p.Name == "book" {
			out = append(out, p)
		}
	}
	return out
}

func TestShelfBookLayout(t *testing.T) {
	a := books(NewFactory(1).Build(Shelf, 0x7a5230))
	b := books(NewFactory(42).Build(Shelf, 0x7a5230))
	if len(a) != 15 || len(b) != 15 {
		t.Fatalf("books = %d and %d, want 15", len(a), len(b))
	}

	slots := BookSlots()
	for i := range a {
		minA, maxA := a[i].Mesh.Bounds()
		minB, maxB := b[i].Mesh.Bounds()
		centreA := (minA.X + maxA.X) / 2
		centreB := (minB.X + maxB.X) / 2
		if !almostEqual(centreA, centreB) || !almostEqual(centreA, slots[i%len(slots)]) {
			t.Errorf("book %d centre %v / %v, want slot %v", i, centreA, centreB, slots[i%len(slots)])
		}
		if a[i].Material.Color != bookColors[i%len(bookColors)] {
			t.Errorf("book %d color = %06x", i, uint32(a[i].Material.Color))
		}
		w := maxA.X - minA.X
		h := maxA.Y - minA.Y
		if w < 0.07-1e-9 || w > 0.11+1e-9 || h < 0.28-1e-9 || h > 0.38+1e-9 {
			t.Errorf("book %d size %vx%v out of range", i, w, h)
		}
	}

	again := books(NewFactory(1).Build(Shelf, 0x7a5230))
	for i := range a {
		_, maxA := a[i].Mesh.Bounds()
		_, maxC := again[i].Mesh.Bounds()
		if !almostEqualVector(maxA, maxC) {
			t.Errorf("book %d differs for the same seed", i)
		}
	}
}
