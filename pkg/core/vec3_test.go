package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestVec3_Normalize_UnitLength(t *testing.T) {
	tests := []struct {
		name   string
		vector Vec3
	}{
		{name: "axis aligned", vector: NewVec3(5, 0, 0)},
		{name: "negative components", vector: NewVec3(-1, -2, -3)},
		{name: "tiny vector", vector: NewVec3(1e-8, 2e-8, -1e-8)},
		{name: "large vector", vector: NewVec3(1e8, -2e8, 3e8)},
		{name: "already unit", vector: NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()

			const tolerance = 1e-9
			if math.Abs(result.Length()-1.0) > tolerance {
				t.Errorf("Expected unit length, got %v", result.Length())
			}
		})
	}
}

func TestVec3_Normalize_ZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic when normalizing zero-length vector")
		}
	}()
	NewVec3(0, 0, 0).Normalize()
}

func TestVec3_Reflect_Property(t *testing.T) {
	// For unit n, dot(reflect(i,n), n) must equal -dot(i,n)
	tests := []struct {
		name     string
		incident Vec3
		normal   Vec3
	}{
		{name: "head on", incident: NewVec3(0, 0, -1), normal: NewVec3(0, 0, 1)},
		{name: "45 degrees", incident: NewVec3(1, -1, 0).Normalize(), normal: NewVec3(0, 1, 0)},
		{name: "grazing", incident: NewVec3(1, -0.01, 0).Normalize(), normal: NewVec3(0, 1, 0)},
		{name: "arbitrary", incident: NewVec3(0.3, -0.5, -0.7).Normalize(), normal: NewVec3(1, 2, 3).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reflected := tt.incident.Reflect(tt.normal)

			const tolerance = 1e-9
			if math.Abs(reflected.Dot(tt.normal)+tt.incident.Dot(tt.normal)) > tolerance {
				t.Errorf("Expected dot(reflect(i,n), n) == -dot(i,n), got %v vs %v",
					reflected.Dot(tt.normal), -tt.incident.Dot(tt.normal))
			}
			if math.Abs(reflected.Length()-tt.incident.Length()) > tolerance {
				t.Errorf("Reflection changed length: %v -> %v", tt.incident.Length(), reflected.Length())
			}
		})
	}
}

func TestVec3_Refract_NormalIncidence(t *testing.T) {
	// A ray along the normal passes straight through regardless of index
	incident := NewVec3(0, 0, -1)
	normal := NewVec3(0, 0, 1)

	refracted := incident.Refract(normal, 1.5, 1.0)

	const tolerance = 1e-9
	if refracted.Subtract(incident).Length() > tolerance {
		t.Errorf("Expected %v, got %v", incident, refracted)
	}
}

func TestVec3_Refract_SnellsLaw(t *testing.T) {
	// Entering glass at 45 degrees: sin(theta_t) = sin(45)/1.5
	incident := NewVec3(1, -1, 0).Normalize()
	normal := NewVec3(0, 1, 0)

	refracted := incident.Refract(normal, 1.5, 1.0)

	sinIncident := math.Sqrt(0.5)
	sinRefracted := math.Abs(refracted.Normalize().X)

	const tolerance = 1e-9
	if math.Abs(sinRefracted-sinIncident/1.5) > tolerance {
		t.Errorf("Snell's law violated: sin(theta_t)=%v, expected %v", sinRefracted, sinIncident/1.5)
	}
	if refracted.Y >= 0 {
		t.Error("Refracted ray should continue into the surface")
	}
}

func TestVec3_Refract_TotalInternalReflection(t *testing.T) {
	// Exiting glass at a steep angle: no refracted direction exists and the
	// reflect-only sentinel (1,0,0) is returned.
	incident := NewVec3(1, 0.1, 0).Normalize() // dot(i,n) > 0, ray exits the medium
	normal := NewVec3(0, 1, 0)

	refracted := incident.Refract(normal, 1.5, 1.0)

	sentinel := NewVec3(1, 0, 0)
	if refracted != sentinel {
		t.Errorf("Expected TIR sentinel %v, got %v", sentinel, refracted)
	}
}

func TestVec3_Refract_ExitFlipsIndices(t *testing.T) {
	// When dot(i,n) > 0 the ray is leaving the medium: the result must equal
	// refracting against the flipped normal with the indices swapped.
	incident := NewVec3(0.3, 0.2, -0.5).Normalize()
	normal := NewVec3(0, -1, 0) // dot(i,n) < 0 is the entering case; flip it
	exiting := normal.Negate()

	a := incident.Refract(exiting, 1.5, 1.0)
	b := incident.Refract(exiting.Negate(), 1.0, 1.5)

	const tolerance = 1e-12
	if a.Subtract(b).Length() > tolerance {
		t.Errorf("Exit case mismatch: %v vs %v", a, b)
	}
}

func TestVec3_IsFinite(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected bool
	}{
		{name: "zero", vector: NewVec3(0, 0, 0), expected: true},
		{name: "ordinary", vector: NewVec3(1, -2, 3), expected: true},
		{name: "nan x", vector: NewVec3(math.NaN(), 0, 0), expected: false},
		{name: "inf y", vector: NewVec3(0, math.Inf(1), 0), expected: false},
		{name: "neg inf z", vector: NewVec3(0, 0, math.Inf(-1)), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vector.IsFinite(); got != tt.expected {
				t.Errorf("IsFinite(%v) = %t, expected %t", tt.vector, got, tt.expected)
			}
		})
	}
}

func TestVec3_MaxComponent(t *testing.T) {
	v := NewVec3(0.2, 1.7, 0.8)
	if v.MaxComponent() != 1.7 {
		t.Errorf("Expected 1.7, got %v", v.MaxComponent())
	}
}

func TestRandomUnitVector_UnitLength(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	const tolerance = 1e-9
	for i := 0; i < 100; i++ {
		v := RandomUnitVector(random)
		if math.Abs(v.Length()-1.0) > tolerance {
			t.Fatalf("Sample %d has length %v, expected 1", i, v.Length())
		}
	}
}

func TestRandomInUnitSphere_Inside(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		p := RandomInUnitSphere(random)
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Sample %d is outside the unit sphere: %v", i, p)
		}
	}
}
