// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"strings"
)

// Matrix2 is a 3x2 matrix representing a 2D affine transform,
// laid out in the same order as the SVG matrix(a, b, c, d, e, f)
// transform function: XX=a, YX=b, XY=c, YY=d, X0=e, Y0=f.
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2] matrix.
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		0, 0,
	}
}

// Translate2D returns a Matrix2 2D matrix with given translations
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		x, y,
	}
}

// Scale2D returns a Matrix2 scaling matrix by given x and y factors
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{
		x, 0,
		0, y,
		0, 0,
	}
}

// Rotate2D returns a Matrix2 rotation matrix by given radians angle
// (positive angle rotates from the x axis toward the y axis).
func Rotate2D(angle float32) Matrix2 {
	c := Cos(angle)
	s := Sin(angle)
	return Matrix2{
		c, s,
		-s, c,
		0, 0,
	}
}

// Skew2D returns a Matrix2 skew matrix by given radian angles.
func Skew2D(x, y float32) Matrix2 {
	return Matrix2{
		1, Tan(y),
		Tan(x), 1,
		0, 0,
	}
}

// IsIdentity returns true if the matrix is exactly the identity.
func (a Matrix2) IsIdentity() bool {
	return a == Identity2()
}

// IsTranslation returns true if the matrix only translates.
func (a Matrix2) IsTranslation() bool {
	return a.XX == 1 && a.YX == 0 && a.XY == 0 && a.YY == 1
}

// IsScale returns true if the matrix only scales.
func (a Matrix2) IsScale() bool {
	return a.YX == 0 && a.XY == 0 && a.X0 == 0 && a.Y0 == 0
}

// Mul returns a * b. Applying the result to a point applies b first and
// then a, so transform lists are composed left to right with Mul.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// SetMul sets a to a * b
func (a *Matrix2) SetMul(b Matrix2) {
	*a = a.Mul(b)
}

// MulVector2AsVector multiplies the Vector2 as a vector without adding translations.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y
	ty := a.YX*v.X + a.YY*v.Y
	return Vec2(tx, ty)
}

// MulVector2AsPoint multiplies the Vector2 as a point, including adding translations.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y + a.X0
	ty := a.YX*v.X + a.YY*v.Y + a.Y0
	return Vec2(tx, ty)
}

// Det returns the determinant of the linear part of the matrix.
func (a Matrix2) Det() float32 {
	return a.XX*a.YY - a.XY*a.YX
}

// Inverse returns the inverse of the matrix. A singular matrix
// returns the identity.
func (a Matrix2) Inverse() Matrix2 {
	det := a.Det()
	if det == 0 {
		return Identity2()
	}
	id := 1 / det
	return Matrix2{
		XX: a.YY * id,
		YX: -a.YX * id,
		XY: -a.XY * id,
		YY: a.XX * id,
		X0: (a.XY*a.Y0 - a.YY*a.X0) * id,
		Y0: (a.YX*a.X0 - a.XX*a.Y0) * id,
	}
}

// ExtractRot extracts the rotation component from a given matrix
func (a Matrix2) ExtractRot() float32 {
	return Atan2(a.YX, a.XX)
}

// ExpansionX returns the x scale factor of the matrix.
func (a Matrix2) ExpansionX() float32 {
	return Hypot(a.XX, a.YX)
}

// ExpansionY returns the y scale factor of the matrix.
func (a Matrix2) ExpansionY() float32 {
	return Hypot(a.XY, a.YY)
}

// Descent returns the geometric mean scale of the matrix, used to
// convert stroke widths and other isotropic lengths.
func (a Matrix2) Descent() float32 {
	return Sqrt(Abs(a.Det()))
}

// String returns the SVG transform attribute form of the matrix:
// "" for the identity, translate(...) or scale(...) for the pure forms,
// and matrix(...) otherwise. The output parses back to the same matrix.
func (a Matrix2) String() string {
	switch {
	case a.IsIdentity():
		return ""
	case a.IsTranslation():
		return "translate(" + FormatFloat(a.X0) + "," + FormatFloat(a.Y0) + ")"
	case a.IsScale():
		if a.XX == a.YY {
			return "scale(" + FormatFloat(a.XX) + ")"
		}
		return "scale(" + FormatFloat(a.XX) + "," + FormatFloat(a.YY) + ")"
	}
	var sb strings.Builder
	sb.WriteString("matrix(")
	for i, v := range []float32{a.XX, a.YX, a.XY, a.YY, a.X0, a.Y0} {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(FormatFloat(v))
	}
	sb.WriteByte(')')
	return sb.String()
}

// SetString sets the matrix from an SVG transform list. See [ParseTransform].
func (a *Matrix2) SetString(str string) error {
	m, err := ParseTransform(str)
	if err != nil {
		*a = Identity2()
		return err
	}
	*a = m
	return nil
}
