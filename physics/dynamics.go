package physics

import "fmt"

// Integrator selects the numerical scheme used by LinearDynamicsState.Step.
type Integrator int

const (
	VelocityVerlet Integrator = iota
	ForwardEuler
)

func (i Integrator) String() string {
	switch i {
	case ForwardEuler:
		return "euler"
	default:
		return "verlet"
	}
}

// LinearDynamicsState is the position, velocity and owned forces of one
// simulated point.
type LinearDynamicsState struct {
	Position Vec3
	Velocity Vec3

	forces    []Force
	prevAccel Vec3
}

func NewLinearDynamicsState(position, velocity Vec3) *LinearDynamicsState {
	return &LinearDynamicsState{Position: position, Velocity: velocity}
}

// AddForce takes ownership of f. Callers must not add the same instance to
// more than one state; use Clone for that.
func (s *LinearDynamicsState) AddForce(f Force) {
	if f == nil {
		return
	}
	s.forces = append(s.forces, f)
}

// Forces returns a copy of the force list in insertion order.
func (s *LinearDynamicsState) Forces() []Force {
	out := make([]Force, len(s.forces))
	copy(out, s.forces)
	return out
}

func (s *LinearDynamicsState) ResetForces() {
	s.forces = nil
}

// RemoveForces drops every force for which drop returns true.
func (s *LinearDynamicsState) RemoveForces(drop func(Force) bool) {
	kept := s.forces[:0]
	for _, f := range s.forces {
		if !drop(f) {
			kept = append(kept, f)
		}
	}
	for i := len(kept); i < len(s.forces); i++ {
		s.forces[i] = nil
	}
	s.forces = kept
}

// CloneForcesFrom appends an independent copy of every force owned by src.
func (s *LinearDynamicsState) CloneForcesFrom(src *LinearDynamicsState) {
	if src == nil {
		return
	}
	for _, f := range src.forces {
		s.forces = append(s.forces, f.Clone())
	}
}

// Clone returns a deep copy, forces included.
func (s *LinearDynamicsState) Clone() *LinearDynamicsState {
	c := &LinearDynamicsState{
		Position:  s.Position,
		Velocity:  s.Velocity,
		prevAccel: s.prevAccel,
	}
	c.CloneForcesFrom(s)
	return c
}

// NetForce sums every owned force for the given mass.
func (s *LinearDynamicsState) NetForce(mass float64) Vec3 {
	net := Zero
	for _, f := range s.forces {
		net = net.Add(f.ForceFor(s, mass))
	}
	return net
}

// Acceleration applies Newton's second law. It panics on a non-positive mass.
func (s *LinearDynamicsState) Acceleration(mass float64) Vec3 {
	if mass <= 0 {
		panic(fmt.Sprintf("physics: acceleration requested for non-positive mass %v", mass))
	}
	return s.NetForce(mass).Mul(1 / mass)
}

// PreviousAcceleration is the acceleration retained by the last Verlet step.
func (s *LinearDynamicsState) PreviousAcceleration() Vec3 {
	return s.prevAccel
}

func (s *LinearDynamicsState) Step(integrator Integrator, mass, dt float64) {
	switch integrator {
	case ForwardEuler:
		s.StepWithForwardEuler(mass, dt)
	default:
		s.StepWithVerlet(mass, dt)
	}
}

// StepWithForwardEuler advances both position and velocity from the
// pre-step derivatives: x += v*dt, then v += a*dt.
func (s *LinearDynamicsState) StepWithForwardEuler(mass, dt float64) {
	accel := s.Acceleration(mass)
	s.Position = s.Position.Add(s.Velocity.Mul(dt))
	s.Velocity = s.Velocity.Add(accel.Mul(dt))
}

// StepWithVerlet is velocity Verlet with the previous acceleration kept on
// the state. The first step treats the previous acceleration as zero.
func (s *LinearDynamicsState) StepWithVerlet(mass, dt float64) {
	accel := s.Acceleration(mass)
	s.Position = s.Position.Add(s.Velocity.Mul(dt)).Add(accel.Mul(0.5 * dt * dt))
	s.Velocity = s.Velocity.Add(s.prevAccel.Add(accel).Mul(0.5 * dt))
	s.prevAccel = accel
}
