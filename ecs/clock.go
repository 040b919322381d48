package ecs

// Clock tracks both simulation time (scaled) and real time (unscaled) for
// the current step.
type Clock struct {
	Step   uint64
	Dt     float64
	RealDt float64
	Sim    float64
	Real   float64
	Scale  float64
}

func (c *Clock) advance(realDt float64) {
	if realDt < 0 {
		realDt = 0
	}
	c.Step++
	c.RealDt = realDt
	c.Dt = realDt * c.Scale
	c.Real += c.RealDt
	c.Sim += c.Dt
}
