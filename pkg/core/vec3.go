package core

import "math"

// Vec3 represents a 3D vector, used for points, directions and RGB colors.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Normalize returns a unit vector in the same direction. A zero-length
// vector has no direction; normalizing one panics instead of silently
// producing NaNs that would corrupt every shading computation downstream.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		panic("core: normalize of zero-length vector")
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Reflect returns the direction of v mirrored about the unit normal n:
// v - 2*dot(v,n)*n
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract returns the direction of v bent at a surface with unit normal n
// according to Snell's law, where etaT is the refractive index of the medium
// being entered and etaI the index of the medium being left. When v points
// along n (the ray is exiting the medium) the normal is flipped and the two
// indices swapped. Under total internal reflection there is no refracted
// direction; the (1, 0, 0) sentinel is returned and the caller's refraction
// contribution degenerates to reflect-only.
func (v Vec3) Refract(n Vec3, etaT, etaI float64) Vec3 {
	cosi := -math.Max(-1, math.Min(1, v.Dot(n)))
	if cosi < 0 {
		return v.Refract(n.Negate(), etaI, etaT)
	}
	eta := etaI / etaT
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return Vec3{X: 1, Y: 0, Z: 0}
	}
	return v.Multiply(eta).Add(n.Multiply(eta*cosi - math.Sqrt(k)))
}

// Clamp returns a vector with components clamped to [minVal, maxVal]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// MaxComponent returns the largest of the three components
func (v Vec3) MaxComponent() float64 {
	return max(v.X, max(v.Y, v.Z))
}

// IsFinite reports whether all components are finite numbers. Used at the
// integrator boundary to keep NaN/Inf samples out of the pixel buffer.
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
