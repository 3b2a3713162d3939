package roundtrip

// Debouncer coalesces triggers within one round trip into a single call of fire.
// It is owned by one binding and not safe for concurrent use.
type Debouncer struct {
	scheduler Scheduler
	fire      func()
	pending   bool
}

// NewDebouncer creates a debouncer that runs fire through scheduler.
func NewDebouncer(scheduler Scheduler, fire func()) *Debouncer {
	return &Debouncer{scheduler: scheduler, fire: fire}
}

// Trigger schedules fire unless a call is already pending.
func (d *Debouncer) Trigger() {
	if d.pending {
		return
	}
	d.pending = true
	d.scheduler.BeforeResponse(func() {
		d.pending = false
		d.fire()
	})
}

// Pending reports whether a call is scheduled but has not run yet.
func (d *Debouncer) Pending() bool {
	return d.pending
}
