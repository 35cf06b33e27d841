package roomplanner

// Points handed to the clipper carry depth in Z: distance in front of the
// camera, positive forward.

func intersectNearPlane(p1, p2 Vector3, near float64) Vector3 {
	dz := p2.Z - p1.Z
	if dz == 0 {
		return p1
	}
	t := (near - p1.Z) / dz
	return Vector3{
		X: p1.X + (p2.X-p1.X)*t,
		Y: p1.Y + (p2.Y-p1.Y)*t,
		Z: near,
	}
}

// clipPolygonAgainstNearPlane keeps the part of a convex polygon at or beyond
// the near plane (Sutherland–Hodgman against a single plane).
func clipPolygonAgainstNearPlane(points []Vector3, near float64) []Vector3 {
	out := make([]Vector3, 0, len(points)+1)
	n := len(points)
	for i := 0; i < n; i++ {
		curr := points[i]
		prev := points[(i-1+n)%n]
		currIn := curr.Z >= near
		prevIn := prev.Z >= near
		if currIn {
			if !prevIn {
				out = append(out, intersectNearPlane(prev, curr, near))
			}
			out = append(out, curr)
		} else if prevIn {
			out = append(out, intersectNearPlane(prev, curr, near))
		}
	}
	return out
}

// clipSegmentAgainstNearPlane trims a line segment; false when it lies
// entirely behind the plane.
func clipSegmentAgainstNearPlane(a, b Vector3, near float64) (Vector3, Vector3, bool) {
	aIn, bIn := a.Z >= near, b.Z >= near
	switch {
	case aIn && bIn:
		return a, b, true
	case aIn:
		return a, intersectNearPlane(a, b, near), true
	case bIn:
		return intersectNearPlane(a, b, near), b, true
	}
	return a, b, false
}
