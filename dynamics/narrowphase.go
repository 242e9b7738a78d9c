// Copyright 2024 The Vortex2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import (
	"math"

	"github.com/vortex2d/engine/math2d"
)

// narrowTest dispatches a broad-phase pair to the shape-pair test that
// matches both participants' ShapeKind, grounded on the teacher's
// shape-switch dispatch in experimental/physics/narrowphase.go's
// ResolveCollision (there over *shape.Sphere/*shape.Plane/*shape.ConvexHull;
// here over Circle/boundaryKind/polygon-like). Returns nil when the pair
// is not touching.
func narrowTest(a, b *Body) *Manifold {
	switch {
	case a.Kind == Circle && b.Kind == Circle:
		return testCircleCircle(a, b)
	case a.Kind == Circle && b.Kind == boundaryKind:
		return testCircleBoundary(a, b)
	case b.Kind == Circle && a.Kind == boundaryKind:
		return flip(testCircleBoundary(b, a))
	case a.Kind == Circle && b.Kind.isPolygonLike():
		return testCirclePolygon(a, b)
	case b.Kind == Circle && a.Kind.isPolygonLike():
		return flip(testCirclePolygon(b, a))
	case a.Kind.isPolygonLike() && b.Kind == boundaryKind:
		return testPolygonBoundary(a, b)
	case b.Kind.isPolygonLike() && a.Kind == boundaryKind:
		return flip(testPolygonBoundary(b, a))
	case a.Kind.isPolygonLike() && b.Kind.isPolygonLike():
		return testPolygonPolygon(a, b)
	default:
		return nil
	}
}

// flip swaps BodyA/BodyB and negates the normal, used to reuse an
// asymmetric test's result when the broad phase presented the pair in
// the opposite order.
func flip(m *Manifold) *Manifold {
	if m == nil {
		return nil
	}
	m.BodyA, m.BodyB = m.BodyB, m.BodyA
	m.Normal = m.Normal.Negate()
	return m
}

// testCircleCircle is the analytic circle-circle test, the 2D analogue
// of the teacher's SphereSphere (experimental/physics/narrowphase.go).
func testCircleCircle(a, b *Body) *Manifold {
	delta := b.Pos.Sub(a.Pos)
	distSq := delta.LengthSq()
	radiusSum := a.Radius + b.Radius
	if distSq >= radiusSum*radiusSum {
		return nil
	}

	dist := math.Sqrt(distSq)
	var normal math2d.Vector2
	if dist > 1e-9 {
		normal = delta.Scale(1 / dist)
	} else {
		// Coincident centers: spec.md §4.5(a) disambiguates the
		// degenerate zero-length separation to straight up (positive y
		// points down).
		normal = math2d.Vector2{X: 0, Y: -1}
	}
	point := a.Pos.Add(normal.Scale(a.Radius))
	return &Manifold{
		BodyA:       a,
		BodyB:       b,
		Normal:      normal,
		Penetration: radiusSum - dist,
		Points:      []math2d.Vector2{point},
	}
}

// testCircleBoundary tests a circle against a half-plane, the 2D
// analogue of the teacher's SpherePlane.
func testCircleBoundary(circle, wall *Body) *Manifold {
	dist := wall.boundarySignedDistance(circle.Pos)
	pen := circle.Radius - dist
	if pen <= 0 {
		return nil
	}
	point := circle.Pos.Sub(wall.BoundaryNormal.Scale(circle.Radius))
	return &Manifold{
		BodyA:       circle,
		BodyB:       wall,
		Normal:      wall.BoundaryNormal.Negate(),
		Penetration: pen,
		Points:      []math2d.Vector2{point},
	}
}

// testCirclePolygon tests a circle against a convex polygon (Polygon,
// Triangle or Rectangle) via nearest-feature: find the polygon edge with
// greatest separation along its normal, then classify the circle center
// as inside the polygon, nearest an edge's face, or nearest a vertex.
func testCirclePolygon(circle, poly *Body) *Manifold {
	verts := poly.WorldVertices
	normals := polygonEdgeNormals(verts)

	bestSep := -math.MaxFloat64
	bestEdge := 0
	for i, n := range normals {
		sep := n.Dot(circle.Pos.Sub(verts[i]))
		if sep > bestSep {
			bestSep = sep
			bestEdge = i
		}
	}
	if bestSep > circle.Radius {
		return nil
	}

	v1 := verts[bestEdge]
	v2 := verts[(bestEdge+1)%len(verts)]

	if bestSep < 1e-9 {
		// Circle center is inside the polygon: push out along the
		// nearest edge's normal.
		normal := normals[bestEdge]
		point := circle.Pos.Sub(normal.Scale(circle.Radius))
		return &Manifold{
			BodyA:       circle,
			BodyB:       poly,
			Normal:      normal.Negate(),
			Penetration: circle.Radius - bestSep,
			Points:      []math2d.Vector2{point},
		}
	}

	edge := v2.Sub(v1)
	t := circle.Pos.Sub(v1).Dot(edge) / edge.LengthSq()

	var closest math2d.Vector2
	switch {
	case t < 0:
		closest = v1
	case t > 1:
		closest = v2
	default:
		closest = v1.Add(edge.Scale(t))
	}

	delta := circle.Pos.Sub(closest)
	distSq := delta.LengthSq()
	if distSq > circle.Radius*circle.Radius {
		return nil
	}
	dist := math.Sqrt(distSq)
	var normal math2d.Vector2
	if dist > 1e-9 {
		normal = delta.Scale(1 / dist)
	} else {
		normal = normals[bestEdge]
	}
	return &Manifold{
		BodyA:       circle,
		BodyB:       poly,
		Normal:      normal.Negate(),
		Penetration: circle.Radius - dist,
		Points:      []math2d.Vector2{closest},
	}
}

// testPolygonBoundary tests a convex polygon against a half-plane: every
// vertex strictly behind the plane contributes a contact point, and the
// penetration is the deepest one.
func testPolygonBoundary(poly, wall *Body) *Manifold {
	deepest := math.MaxFloat64
	var points []math2d.Vector2
	for _, v := range poly.WorldVertices {
		dist := wall.boundarySignedDistance(v)
		if dist < deepest {
			deepest = dist
		}
		if dist < 0 {
			points = append(points, v)
		}
	}
	if deepest >= 0 {
		return nil
	}
	return &Manifold{
		BodyA:       poly,
		BodyB:       wall,
		Normal:      wall.BoundaryNormal.Negate(),
		Penetration: -deepest,
		Points:      points,
	}
}

// testPolygonPolygon is the SAT test between two convex polygons
// (Polygon, Triangle, Rectangle all share this path per Kind.isPolygonLike),
// grounded on the teacher's ConvexConvex: find the separating-axis with
// least penetration among both shapes' edge normals, then clip the
// incident edge against the reference edge's side planes (the
// Sutherland-Hodgman-style clipping the teacher's ClipAgainstHull performs
// in 3D, specialized to 2D polygon edges).
func testPolygonPolygon(a, b *Body) *Manifold {
	penA, edgeA := leastPenetrationAxis(a, b)
	if penA >= 0 {
		return nil
	}
	penB, edgeB := leastPenetrationAxis(b, a)
	if penB >= 0 {
		return nil
	}

	var ref, inc *Body
	var refEdge int
	var penetration float64
	flipped := false
	if penB > penA {
		ref, inc, refEdge, penetration = b, a, edgeB, penB
		flipped = true
	} else {
		ref, inc, refEdge, penetration = a, b, edgeA, penA
	}

	refNormals := polygonEdgeNormals(ref.WorldVertices)
	refNormal := refNormals[refEdge]

	incNormals := polygonEdgeNormals(inc.WorldVertices)
	incEdge := 0
	minDot := math.MaxFloat64
	for i, n := range incNormals {
		d := n.Dot(refNormal)
		if d < minDot {
			minDot = d
			incEdge = i
		}
	}
	incVerts := inc.WorldVertices
	iv1 := incVerts[incEdge]
	iv2 := incVerts[(incEdge+1)%len(incVerts)]

	points := clipIncidentEdge(iv1, iv2, ref.WorldVertices, refEdge, refNormal)
	if len(points) == 0 {
		refV1 := ref.WorldVertices[refEdge]
		points = []math2d.Vector2{refV1}
	}

	normal := refNormal
	if flipped {
		normal = normal.Negate()
	}
	return &Manifold{
		BodyA:       a,
		BodyB:       b,
		Normal:      normal,
		Penetration: -penetration,
		Points:      points,
	}
}

// leastPenetrationAxis returns the signed penetration (negative when
// overlapping) and edge index of the face on body that best separates
// body from other, projecting other onto each of body's edge normals.
func leastPenetrationAxis(body, other *Body) (float64, int) {
	normals := polygonEdgeNormals(body.WorldVertices)
	best := -math.MaxFloat64
	bestEdge := 0
	for i, n := range normals {
		bodyVal := n.Dot(body.WorldVertices[i])
		otherMin, _ := projectPolygon(other.WorldVertices, n)
		sep := otherMin - bodyVal
		if sep > best {
			best = sep
			bestEdge = i
		}
	}
	return best, bestEdge
}

// clipIncidentEdge clips the incident edge [v1, v2] against the two side
// planes adjacent to the reference edge, then discards any clipped point
// still in front of the reference face itself, returning the remaining
// points as contacts.
func clipIncidentEdge(v1, v2 math2d.Vector2, refVerts []math2d.Vector2, refEdge int, refNormal math2d.Vector2) []math2d.Vector2 {
	n := len(refVerts)
	r1 := refVerts[refEdge]
	r2 := refVerts[(refEdge+1)%n]
	tangent := r2.Sub(r1).Normalize()

	points := []math2d.Vector2{v1, v2}
	points = clipSidePlane(points, tangent.Negate(), r1)
	if len(points) < 2 {
		return nil
	}
	points = clipSidePlane(points, tangent, r2)
	if len(points) < 2 {
		return nil
	}

	refOffset := refNormal.Dot(r1)
	out := points[:0:0]
	for _, p := range points {
		if refNormal.Dot(p)-refOffset <= 0 {
			out = append(out, p)
		}
	}
	return out
}

// clipSidePlane clips the segment list against the half-plane with
// outward normal axis through point on, keeping points behind it and
// interpolating the crossing point when the segment straddles it.
func clipSidePlane(points []math2d.Vector2, axis, on math2d.Vector2) []math2d.Vector2 {
	if len(points) < 2 {
		return nil
	}
	offset := axis.Dot(on)
	d0 := axis.Dot(points[0]) - offset
	d1 := axis.Dot(points[1]) - offset

	var out []math2d.Vector2
	if d0 <= 0 {
		out = append(out, points[0])
	}
	if d1 <= 0 {
		out = append(out, points[1])
	}
	if d0*d1 < 0 {
		t := d0 / (d0 - d1)
		out = append(out, points[0].Lerp(points[1], t))
	}
	return out
}
