package banyan

import "math"

// Affine3 is a 3D affine matrix stored as the images of the three basis
// vectors followed by the translation:
//
//	[xx xy xz  yx yy yz  zx zy zz  tx ty tz]
//
//	| xx yx zx tx |
//	| xy yy zy ty |
//	| xz yz zz tz |
type Affine3 [12]float64

// identityAffine3 is the 3D identity matrix.
var identityAffine3 = Affine3{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0}

// multiplyAffine3 multiplies two 3D affine matrices: result = parent * child.
func multiplyAffine3(p, c Affine3) Affine3 {
	var r Affine3
	for col := 0; col < 3; col++ {
		x, y, z := c[col*3], c[col*3+1], c[col*3+2]
		r[col*3] = p[0]*x + p[3]*y + p[6]*z
		r[col*3+1] = p[1]*x + p[4]*y + p[7]*z
		r[col*3+2] = p[2]*x + p[5]*y + p[8]*z
	}
	x, y, z := c[9], c[10], c[11]
	r[9] = p[0]*x + p[3]*y + p[6]*z + p[9]
	r[10] = p[1]*x + p[4]*y + p[7]*z + p[10]
	r[11] = p[2]*x + p[5]*y + p[8]*z + p[11]
	return r
}

// transformPoint3 applies a 3D affine matrix to a point.
func transformPoint3(m Affine3, p Vec3) Vec3 {
	return Vec3{
		X: m[0]*p.X + m[3]*p.Y + m[6]*p.Z + m[9],
		Y: m[1]*p.X + m[4]*p.Y + m[7]*p.Z + m[10],
		Z: m[2]*p.X + m[5]*p.Y + m[8]*p.Z + m[11],
	}
}

// translation3 returns the matrix translating by v.
func translation3(v Vec3) Affine3 {
	m := identityAffine3
	m[9], m[10], m[11] = v.X, v.Y, v.Z
	return m
}

// rotation3X returns the matrix rotating by angle radians around the X axis.
func rotation3X(angle float64) Affine3 {
	sin, cos := math.Sincos(angle)
	return Affine3{
		1, 0, 0,
		0, cos, sin,
		0, -sin, cos,
		0, 0, 0,
	}
}

// rotation3Y returns the matrix rotating by angle radians around the Y axis.
func rotation3Y(angle float64) Affine3 {
	sin, cos := math.Sincos(angle)
	return Affine3{
		cos, 0, -sin,
		0, 1, 0,
		sin, 0, cos,
		0, 0, 0,
	}
}

// rotation3Z returns the matrix rotating by angle radians around the Z axis.
func rotation3Z(angle float64) Affine3 {
	sin, cos := math.Sincos(angle)
	return Affine3{
		cos, sin, 0,
		-sin, cos, 0,
		0, 0, 1,
		0, 0, 0,
	}
}

// rotation3 composes the three per-axis rotations in the fixed order the
// renderer guarantees: X first, then Y, then Z.
func rotation3(angles Vec3) Affine3 {
	m := rotation3X(angles.X)
	m = multiplyAffine3(rotation3Y(angles.Y), m)
	m = multiplyAffine3(rotation3Z(angles.Z), m)
	return m
}

// project2 orthographically projects a 3D affine matrix onto the device
// plane: the 2D affine image of the z=0 cross-section plane, with the Z
// row and column dropped. Layout matches Affine2.
func project2(m Affine3) Affine2 {
	return Affine2{m[0], m[1], m[3], m[4], m[9], m[10]}
}

// Affine2 is a 2D affine matrix: [a, b, c, d, tx, ty].
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine2 [6]float64

// identityAffine2 is the 2D identity matrix.
var identityAffine2 = Affine2{1, 0, 0, 1, 0, 0}

// multiplyAffine2 multiplies two 2D affine matrices: result = parent * child.
func multiplyAffine2(p, c Affine2) Affine2 {
	return Affine2{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine2 computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine2(m Affine2) Affine2 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityAffine2
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Affine2{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint2 applies a 2D affine matrix to a point.
func transformPoint2(m Affine2, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// affineScale2 estimates the average scale factor of a 2D affine matrix,
// used to convert a device-space line width into local units.
func affineScale2(m Affine2) float64 {
	sx := math.Hypot(m[0], m[1])
	sy := math.Hypot(m[2], m[3])
	s := (sx + sy) / 2
	if s < 1e-12 {
		return 1e-12
	}
	return s
}
