package core

import (
	"math"
	"testing"
)

func TestSampler_Uniform(t *testing.T) {
	sampler := NewSampler(42)
	for i := 0; i < 1000; i++ {
		v := sampler.Uniform()
		if v < 0 || v >= 1 {
			t.Fatalf("Expected value in [0,1), got %v", v)
		}
	}
}

func TestSampler_UniformRange(t *testing.T) {
	sampler := NewSampler(42)
	for i := 0; i < 1000; i++ {
		v := sampler.UniformRange(-3, 7)
		if v < -3 || v >= 7 {
			t.Fatalf("Expected value in [-3,7), got %v", v)
		}
	}
}

func TestSampler_UniformVec3Range(t *testing.T) {
	sampler := NewSampler(42)
	for i := 0; i < 1000; i++ {
		v := sampler.UniformVec3Range(-1, 1)
		if v.X < -1 || v.X >= 1 || v.Y < -1 || v.Y >= 1 || v.Z < -1 || v.Z >= 1 {
			t.Fatalf("Expected components in [-1,1), got %v", v)
		}
	}
}

func TestSampler_InUnitSphere(t *testing.T) {
	sampler := NewSampler(42)
	for i := 0; i < 1000; i++ {
		p := sampler.InUnitSphere()
		if p.LengthSquared() >= 1 {
			t.Fatalf("Expected point strictly inside the unit sphere, got %v (|p|²=%v)", p, p.LengthSquared())
		}
	}
}

func TestSampler_UnitVector(t *testing.T) {
	sampler := NewSampler(42)
	for i := 0; i < 1000; i++ {
		v := sampler.UnitVector()
		if math.Abs(v.Length()-1) > 1e-12 {
			t.Fatalf("Expected unit length, got %v", v.Length())
		}
	}
}

func TestSampler_InUnitDisk(t *testing.T) {
	sampler := NewSampler(42)
	for i := 0; i < 1000; i++ {
		p := sampler.InUnitDisk()
		if p.Z != 0 {
			t.Fatalf("Expected disk point in the z=0 plane, got %v", p)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("Expected point strictly inside the unit disk, got %v", p)
		}
	}
}

func TestSampler_SeedDeterminism(t *testing.T) {
	a := NewSampler(7)
	b := NewSampler(7)
	for i := 0; i < 100; i++ {
		if a.Uniform() != b.Uniform() {
			t.Fatal("Expected identical streams for identical seeds")
		}
	}
}

func TestSampler_DistinctSeedsDiverge(t *testing.T) {
	a := NewSampler(1)
	b := NewSampler(2)
	same := true
	for i := 0; i < 100; i++ {
		if a.Uniform() != b.Uniform() {
			same = false
			break
		}
	}
	if same {
		t.Error("Expected different seeds to produce different streams")
	}
}
