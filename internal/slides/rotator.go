// Package slides drives the home page hero carousel.
package slides

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"mrfixit/internal/models"
)

// DefaultInterval is the autoplay delay used when none is configured.
const DefaultInterval = 5 * time.Second

// ErrInvalidIndex is returned by GoTo for an index outside the slide set.
var ErrInvalidIndex = errors.New("slide index out of range")

// State is a point-in-time view of a rotator.
type State struct {
	Index      int           `json:"index"`
	Count      int           `json:"count"`
	Running    bool          `json:"running"`
	Interval   time.Duration `json:"-"`
	IntervalMS int64         `json:"interval_ms"`
}

// Rotator is a circular cursor over a fixed slide set that advances on its
// own timer. The timer is armed by Start and cancelled by Close; nothing
// mutates the cursor after Close returns.
type Rotator struct {
	mu       sync.Mutex
	slides   []models.Slide
	index    int
	running  bool
	interval time.Duration
	timer    *time.Timer
	gen      uint64
	closed   bool
	onChange func(State)
}

// Option configures a Rotator.
type Option func(*Rotator)

// WithInterval sets the autoplay interval. Non-positive values keep the default.
func WithInterval(d time.Duration) Option {
	return func(r *Rotator) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithObserver registers fn to be called after every index change. fn runs
// with the rotator locked and must not call back into it.
func WithObserver(fn func(State)) Option {
	return func(r *Rotator) { r.onChange = fn }
}

// New returns a rotator positioned on the first slide in the running state.
// Autoplay does not begin until Start is called.
func New(slides []models.Slide, opts ...Option) *Rotator {
	r := &Rotator{
		slides:   append([]models.Slide(nil), slides...),
		running:  true,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start arms the autoplay timer. Calling Start again, or after Close, is a no-op.
func (r *Rotator) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || r.timer != nil || !r.running {
		return
	}
	r.arm()
}

// arm schedules the next tick with the current interval. Callers hold mu.
// Each armed timer carries a generation; a callback whose generation is no
// longer current belongs to a timer that was replaced and does nothing.
func (r *Rotator) arm() {
	r.gen++
	gen := r.gen
	r.timer = time.AfterFunc(r.interval, func() { r.fire(gen) })
}

func (r *Rotator) disarm() {
	r.gen++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Rotator) fire(gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || !r.running || gen != r.gen {
		return
	}
	r.tick()
	r.arm()
}

// Tick performs one autoplay step. It does nothing when the set has at most
// one slide or the rotator is paused, and reports whether the index moved.
func (r *Rotator) Tick() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || !r.running {
		return false
	}
	return r.tick()
}

func (r *Rotator) tick() bool {
	n := len(r.slides)
	if n <= 1 {
		return false
	}
	r.index = (r.index + 1) % n
	r.notify()
	return true
}

// Next advances one slide, wrapping to the first. It works while paused.
func (r *Rotator) Next() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n := len(r.slides); n > 0 && !r.closed {
		r.index = (r.index + 1) % n
		r.notify()
	}
	return r.index
}

// Prev steps back one slide, wrapping to the last.
func (r *Rotator) Prev() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n := len(r.slides); n > 0 && !r.closed {
		r.index = (r.index - 1 + n) % n
		r.notify()
	}
	return r.index
}

// GoTo jumps to slide i. An out-of-range i is rejected and the cursor stays put.
func (r *Rotator) GoTo(i int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i < 0 || i >= len(r.slides) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, i, len(r.slides))
	}
	if r.closed {
		return nil
	}
	r.index = i
	r.notify()
	return nil
}

// Pause stops autoplay. Manual navigation keeps working.
func (r *Rotator) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.running = false
	r.disarm()
}

// Resume restarts autoplay after Pause.
func (r *Rotator) Resume() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || r.running {
		return
	}
	r.running = true
	r.arm()
}

// SetInterval changes the autoplay interval; it takes effect from the next
// time the timer is armed.
func (r *Rotator) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.interval = d
}

// Slides returns a copy of the slide set.
func (r *Rotator) Slides() []models.Slide {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Slide(nil), r.slides...)
}

// Current returns the slide under the cursor, or false for an empty set.
func (r *Rotator) Current() (models.Slide, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.slides) == 0 {
		return models.Slide{}, false
	}
	return r.slides[r.index], true
}

// View is a consistent read of the slide set, the slide under the cursor
// and the cursor state.
type View struct {
	Slides  []models.Slide `json:"slides"`
	Current *models.Slide  `json:"current"`
	State   State          `json:"state"`
}

// View returns slides, current slide and state taken under one lock, so an
// autoplay tick cannot land between them.
func (r *Rotator) View() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := View{
		Slides: append([]models.Slide(nil), r.slides...),
		State:  r.state(),
	}
	if len(r.slides) > 0 {
		cur := r.slides[r.index]
		v.Current = &cur
	}
	return v
}

// State returns the current cursor state.
func (r *Rotator) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state()
}

func (r *Rotator) state() State {
	return State{
		Index:      r.index,
		Count:      len(r.slides),
		Running:    r.running && !r.closed,
		Interval:   r.interval,
		IntervalMS: r.interval.Milliseconds(),
	}
}

func (r *Rotator) notify() {
	if r.onChange != nil {
		r.onChange(r.state())
	}
}

// Armed reports whether an autoplay timer is pending.
func (r *Rotator) Armed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timer != nil
}

// Close cancels the autoplay timer for good.
func (r *Rotator) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.disarm()
}
