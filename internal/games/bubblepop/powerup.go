package bubblepop

import "time"

// Powerup is the slow-motion state machine: Inactive or Active since start.
type Powerup struct {
	active   bool
	start    time.Time
	duration time.Duration
}

// NewPowerup creates an inactive powerup lasting duration once triggered.
func NewPowerup(duration time.Duration) *Powerup {
	return &Powerup{duration: duration}
}

// Active reports whether the slowdown is running.
func (p *Powerup) Active() bool { return p.active }

// Trigger starts the powerup, or restarts its clock if already running.
// Returns true only on the Inactive to Active transition.
func (p *Powerup) Trigger(now time.Time) bool {
	started := !p.active
	p.active = true
	p.start = now
	return started
}

// Expired reports whether an active powerup has outlived its duration.
func (p *Powerup) Expired(now time.Time) bool {
	return p.active && now.Sub(p.start) > p.duration
}

// Remaining returns the time left, or zero when inactive.
func (p *Powerup) Remaining(now time.Time) time.Duration {
	if !p.active {
		return 0
	}
	return max(0, p.duration-now.Sub(p.start))
}

// End deactivates the powerup. Returns false if it was not running.
func (p *Powerup) End() bool {
	if !p.active {
		return false
	}
	p.active = false
	p.start = time.Time{}
	return true
}
