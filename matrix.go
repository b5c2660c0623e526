package jzazbz

import "fmt"

// Matrix3 is a row-major 3x3 matrix over float64.
type Matrix3 [3][3]float64

func (m *Matrix3) MulVec3(x, y, z float64) (float64, float64, float64) {
	ox := m[0][0]*x + m[0][1]*y + m[0][2]*z
	oy := m[1][0]*x + m[1][1]*y + m[1][2]*z
	oz := m[2][0]*x + m[2][1]*y + m[2][2]*z
	return ox, oy, oz
}

func (m *Matrix3) Multiply(o *Matrix3) (out Matrix3) {
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += m[i][k] * o[k][j]
			}
			out[i][j] = sum
		}
	}
	return
}

func (mat *Matrix3) Inverted() (ans Matrix3, err error) {
	det := mat[0][0]*(mat[1][1]*mat[2][2]-mat[1][2]*mat[2][1]) -
		mat[0][1]*(mat[1][0]*mat[2][2]-mat[1][2]*mat[2][0]) +
		mat[0][2]*(mat[1][0]*mat[2][1]-mat[1][1]*mat[2][0])

	if det == 0 {
		return ans, fmt.Errorf("matrix is singular and cannot be inverted")
	}
	invDet := 1 / det
	adj := Matrix3{
		{
			(mat[1][1]*mat[2][2] - mat[1][2]*mat[2][1]),
			(mat[0][2]*mat[2][1] - mat[0][1]*mat[2][2]), // Note the sign change for cofactor C12
			(mat[0][1]*mat[1][2] - mat[0][2]*mat[1][1]), // Note the sign change for cofactor C13
		},
		{
			(mat[1][2]*mat[2][0] - mat[1][0]*mat[2][2]),
			(mat[0][0]*mat[2][2] - mat[0][2]*mat[2][0]),
			(mat[0][2]*mat[1][0] - mat[0][0]*mat[1][2]),
		},
		{
			(mat[1][0]*mat[2][1] - mat[1][1]*mat[2][0]),
			(mat[0][1]*mat[2][0] - mat[0][0]*mat[2][1]),
			(mat[0][0]*mat[1][1] - mat[0][1]*mat[1][0]),
		},
	}
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = invDet * adj[i][j]
		}
	}
	return
}
