package physics

import "math"

// StandardGravity is the default gravity magnitude in units/s².
const StandardGravity = 9.81

// Debris scale defaults.
const (
	DefaultBelowGroundScale = 10.0
	DefaultFallingScale     = 0.65
)

// Force computes the force acting on a dynamics state of the given mass.
// A force with zero base magnitude is inert.
type Force interface {
	ForceFor(state *LinearDynamicsState, mass float64) Vec3
	Clone() Force
}

// GravityForce pulls along Direction with Magnitude per unit mass.
type GravityForce struct {
	Magnitude float64
	Direction Vec3
}

// NewGravityForce returns gravity of the given magnitude pointing down.
func NewGravityForce(magnitude float64) *GravityForce {
	return &GravityForce{Magnitude: magnitude, Direction: Up.Mul(-1)}
}

func (f *GravityForce) ForceFor(_ *LinearDynamicsState, mass float64) Vec3 {
	if f.Magnitude == 0 {
		return Zero
	}
	return f.Direction.Mul(f.Magnitude * mass)
}

func (f *GravityForce) Clone() Force {
	c := *f
	return &c
}

// ConstantWindForce drags velocity toward a fixed wind vector.
type ConstantWindForce struct {
	Magnitude  float64
	Direction  Vec3
	Dampedness float64
}

func NewConstantWindForce(magnitude float64, direction Vec3, dampedness float64) *ConstantWindForce {
	return &ConstantWindForce{Magnitude: magnitude, Direction: direction, Dampedness: dampedness}
}

func (f *ConstantWindForce) ForceFor(state *LinearDynamicsState, _ float64) Vec3 {
	if f.Magnitude == 0 {
		return Zero
	}
	wind := f.Direction.Mul(f.Magnitude)
	return dragToward(state.Velocity, wind, f.Dampedness)
}

func (f *ConstantWindForce) Clone() Force {
	c := *f
	return &c
}

// WormholeForce is a wind that always blows toward Center and grows
// linearly with distance from it.
type WormholeForce struct {
	Magnitude  float64
	Dampedness float64
	Center     Vec3
}

func NewWormholeForce(magnitude, dampedness float64, center Vec3) *WormholeForce {
	return &WormholeForce{Magnitude: magnitude, Dampedness: dampedness, Center: center}
}

func (f *WormholeForce) ForceFor(state *LinearDynamicsState, _ float64) Vec3 {
	if f.Magnitude == 0 {
		return Zero
	}
	toCenter := f.Center.Sub(state.Position)
	wind := SafeNormalize(toCenter).Mul(f.Magnitude * toCenter.Len())
	return dragToward(state.Velocity, wind, f.Dampedness)
}

func (f *WormholeForce) Clone() Force {
	c := *f
	return &c
}

// SpringForce is a damped restoring force toward Center.
type SpringForce struct {
	Magnitude  float64
	Stiffness  float64
	Dampedness float64
	Center     Vec3
}

func NewSpringForce(magnitude, stiffness, dampedness float64, center Vec3) *SpringForce {
	return &SpringForce{Magnitude: magnitude, Stiffness: stiffness, Dampedness: dampedness, Center: center}
}

func (f *SpringForce) ForceFor(state *LinearDynamicsState, _ float64) Vec3 {
	if f.Magnitude == 0 {
		return Zero
	}
	damped := state.Velocity.Mul(-f.Dampedness)
	stiffened := state.Position.Sub(f.Center).Mul(-f.Stiffness)
	return damped.Add(stiffened)
}

func (f *SpringForce) Clone() Force {
	c := *f
	return &c
}

// DebrisForce is a one-sided floor at GroundHeight. Its strength grows with
// the distance from the floor and vanishes on it. Below the floor it pushes
// up, amplified by BelowGroundScale. Above the floor it pulls down, damped by
// FallingScale while falling.
type DebrisForce struct {
	Magnitude        float64
	GroundHeight     float64
	BelowGroundScale float64
	FallingScale     float64
}

func NewDebrisForce(magnitude, groundHeight float64) *DebrisForce {
	return &DebrisForce{
		Magnitude:        magnitude,
		GroundHeight:     groundHeight,
		BelowGroundScale: DefaultBelowGroundScale,
		FallingScale:     DefaultFallingScale,
	}
}

func (f *DebrisForce) ForceFor(state *LinearDynamicsState, mass float64) Vec3 {
	if f.Magnitude == 0 {
		return Zero
	}
	height := state.Position.Dot(Up)
	rising := state.Velocity.Dot(Up)
	strength := f.Magnitude * math.Abs(height-f.GroundHeight) * mass

	switch {
	case height < f.GroundHeight:
		return Up.Mul(strength * f.BelowGroundScale)
	case rising < 0:
		return Up.Mul(-strength * f.FallingScale)
	default:
		return Up.Mul(-strength)
	}
}

func (f *DebrisForce) Clone() Force {
	c := *f
	return &c
}

func dragToward(velocity, wind Vec3, dampedness float64) Vec3 {
	return velocity.Sub(wind).Mul(-dampedness)
}
