package component

// TTL destroys an entity once Seconds of simulation time have passed.
type TTL struct {
	Seconds float64
}

var TTLComponent = NewComponent[TTL]()

// Particles marks a short-lived break effect.
type Particles struct {
	Count int
}

var ParticlesComponent = NewComponent[Particles]()
