package vdlib

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// maxQLIterations bounds the implicit-shift QL sweep. Well-conditioned 3x3
// symmetric matrices converge in far fewer iterations; this is a safety
// backstop against pathological input, not a tuned constant.
const maxQLIterations = 32

// EigenDecomposition is the result of decomposing a symmetric 3x3 matrix
// into eigenvalues and eigenvectors, sorted by increasing eigenvalue.
type EigenDecomposition struct {
	Eigenvalues  [3]float32
	Eigenvectors [3]mgl32.Vec3
}

// SolveEigen decomposes the symmetric matrix m (only the upper triangle is
// read) via Householder tridiagonalization followed by the implicit-shift
// QL algorithm, then sorts the result by increasing eigenvalue and
// guarantees the eigenvector matrix is a proper rotation (determinant +1),
// flipping the first eigenvector's sign if needed.
func SolveEigen(m mgl32.Mat3) EigenDecomposition {
	mat := [3][3]float32{
		{m[0], m[3], m[6]},
		{m[3], m[4], m[7]},
		{m[6], m[7], m[8]},
	}

	diag, subdiag, isRotation := tridiagonal3(&mat)
	qlAlgorithm(&diag, &subdiag, &mat)
	if increasingSort(&diag, &mat) {
		isRotation = !isRotation
	}
	guaranteeRotation(&mat, isRotation)

	return EigenDecomposition{
		Eigenvalues: diag,
		Eigenvectors: [3]mgl32.Vec3{
			{mat[0][0], mat[1][0], mat[2][0]},
			{mat[0][1], mat[1][1], mat[2][1]},
			{mat[0][2], mat[1][2], mat[2][2]},
		},
	}
}

// tridiagonal3 reduces the symmetric matrix mat in place to tridiagonal
// form via a single Householder reflection (3x3 symmetric matrices need at
// most one). mat is overwritten with the accumulated reflection, which
// becomes the seed for the eigenvector matrix. It returns the diagonal,
// the subdiagonal (with subdiag[2] always zero, matching the convention
// used by qlAlgorithm), and whether the accumulated reflection is a
// rotation (true) or an improper reflection (false).
func tridiagonal3(mat *[3][3]float32) (diag, subdiag [3]float32, isRotation bool) {
	m00, m01, m02 := mat[0][0], mat[0][1], mat[0][2]
	m11, m12 := mat[1][1], mat[1][2]
	m22 := mat[2][2]

	diag[0] = m00
	subdiag[2] = 0

	if mgl32.Abs(m02) > epsilon {
		length := float32(math.Sqrt(float64(m01*m01 + m02*m02)))
		invLength := 1 / length
		m01 *= invLength
		m02 *= invLength
		q := 2*m01*m12 + m02*(m22-m11)

		diag[1] = m11 + m02*q
		diag[2] = m22 - m02*q
		subdiag[0] = length
		subdiag[1] = m12 - m01*q

		mat[0][0], mat[1][0], mat[2][0] = 1, 0, 0
		mat[0][1], mat[1][1], mat[2][1] = 0, m01, m02
		mat[0][2], mat[1][2], mat[2][2] = 0, m02, -m01
		isRotation = false
	} else {
		diag[1] = m11
		diag[2] = m22
		subdiag[0] = m01
		subdiag[1] = m12

		mat[0][0], mat[1][0], mat[2][0] = 1, 0, 0
		mat[0][1], mat[1][1], mat[2][1] = 0, 1, 0
		mat[0][2], mat[1][2], mat[2][2] = 0, 0, 1
		isRotation = true
	}

	return diag, subdiag, isRotation
}

// qlAlgorithm runs the implicit-shift QL algorithm on the tridiagonal
// matrix (diag, subdiag), accumulating rotations into mat.
func qlAlgorithm(diag, subdiag *[3]float32, mat *[3][3]float32) {
	const n = 3

	for i := 0; i < n; i++ {
		iter := 0
		for {
			m := i
			for m < n-1 {
				dd := mgl32.Abs(diag[m]) + mgl32.Abs(diag[m+1])
				if mgl32.Abs(subdiag[m])+dd == dd {
					break
				}
				m++
			}
			if m == i {
				break
			}

			iter++
			if iter == maxQLIterations {
				break
			}

			g := (diag[i+1] - diag[i]) / (2 * subdiag[i])
			r := float32(math.Sqrt(float64(g*g + 1)))
			if g < 0 {
				g = diag[m] - diag[i] + subdiag[i]/(g-r)
			} else {
				g = diag[m] - diag[i] + subdiag[i]/(g+r)
			}

			s, c := float32(1), float32(1)
			p := float32(0)
			for k := m - 1; k >= i; k-- {
				f := s * subdiag[k]
				b := c * subdiag[k]
				if mgl32.Abs(f) >= mgl32.Abs(g) {
					c = g / f
					r = float32(math.Sqrt(float64(c*c + 1)))
					subdiag[k+1] = f * r
					s = 1 / r
					c *= s
				} else {
					s = f / g
					r = float32(math.Sqrt(float64(s*s + 1)))
					subdiag[k+1] = g * r
					c = 1 / r
					s *= c
				}
				g = diag[k+1] - p
				r = (diag[k]-g)*s + 2*b*c
				p = s * r
				diag[k+1] = g + p
				g = c*r - b

				for row := 0; row < n; row++ {
					f = mat[row][k+1]
					mat[row][k+1] = s*mat[row][k] + c*f
					mat[row][k] = c*mat[row][k] - s*f
				}
			}

			diag[i] -= p
			subdiag[i] = g
			subdiag[m] = 0
		}
	}
}

// increasingSort permutes the columns of mat (the eigenvectors) so that
// diag (the eigenvalues) ends up sorted from smallest to largest. Each
// column swap negates the determinant of mat; increasingSort returns
// whether an odd number of swaps occurred so the caller can keep the
// rotation/reflection parity straight (see guaranteeRotation).
func increasingSort(diag *[3]float32, mat *[3][3]float32) bool {
	const n = 3
	swapped := false
	for i := 0; i <= n-2; i++ {
		j := i
		min := diag[i]
		for k := i + 1; k < n; k++ {
			if diag[k] < min {
				j = k
				min = diag[k]
			}
		}
		if j != i {
			diag[j] = diag[i]
			diag[i] = min
			for row := 0; row < n; row++ {
				mat[row][i], mat[row][j] = mat[row][j], mat[row][i]
			}
			swapped = !swapped
		}
	}
	return swapped
}

// guaranteeRotation flips the sign of the first eigenvector if the
// accumulated transform (tridiagonalization composed with the sort's
// column swaps) is not a proper rotation, so the returned eigenvector
// matrix always has determinant +1.
func guaranteeRotation(mat *[3][3]float32, isRotation bool) {
	if isRotation {
		return
	}
	for row := 0; row < 3; row++ {
		mat[row][0] = -mat[row][0]
	}
}
