package clock

import "time"

// Clock abstracts time for deterministic tests and strict UTC usage.
// Sleep blocks for d and cannot be interrupted.
type Clock interface {
	NowUTC() time.Time
	Sleep(d time.Duration)
}

// SystemUTC is the production clock.
type SystemUTC struct{}

func (SystemUTC) NowUTC() time.Time {
	return time.Now().UTC()
}

func (SystemUTC) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}

// Instant reports real time but never sleeps. Dry runs use it.
type Instant struct{}

func (Instant) NowUTC() time.Time {
	return time.Now().UTC()
}

func (Instant) Sleep(time.Duration) {}

// Fake is a virtual clock: Sleep advances now by d and records the request.
type Fake struct {
	now    time.Time
	sleeps []time.Duration
}

func NewFake(start time.Time) *Fake {
	return &Fake{now: start.UTC()}
}

func (f *Fake) NowUTC() time.Time {
	return f.now
}

func (f *Fake) Sleep(d time.Duration) {
	f.sleeps = append(f.sleeps, d)
	if d > 0 {
		f.now = f.now.Add(d)
	}
}

// Sleeps returns every duration passed to Sleep, in call order.
func (f *Fake) Sleeps() []time.Duration {
	out := make([]time.Duration, len(f.sleeps))
	copy(out, f.sleeps)
	return out
}
