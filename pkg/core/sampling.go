package core

import "math/rand"

// RandomInUnitSphere generates a uniformly distributed random point inside
// the unit sphere via rejection sampling.
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 2*random.Float64()-1)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a uniformly distributed random direction on the
// unit sphere.
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}
