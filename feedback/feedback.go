// Package feedback provides the sinks the slider pulses when a handle crosses a
// ruler tick. A Generator is armed when a drag begins, fired on crossings and
// released when the drag ends.
package feedback

import (
	"fmt"
	"io"
	"sync"

	"rangeline/log"
)

// Generator is a fire-and-forget feedback sink.
type Generator interface {
	// Notify emits one feedback pulse.
	Notify()
	// PrepareNext arms the generator for the following pulse.
	PrepareNext()
}

// Factory creates a fresh generator for each drag.
type Factory func() Generator

// Noop discards every pulse. Hosts use it in non-interactive environments.
type Noop struct{}

func (Noop) Notify()      {}
func (Noop) PrepareNext() {}

// NoopFactory returns Noop generators.
func NoopFactory() Generator { return Noop{} }

// bel is the terminal bell control character.
const bel = "\a"

// Bell rings the terminal bell on every pulse.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
	// armed is set by PrepareNext and cleared by Notify.
	armed bool
}

// NewBell returns a Bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

func (b *Bell) Notify() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.armed {
		log.Debug("bell fired before being prepared")
	}
	b.armed = false
	if _, err := io.WriteString(b.w, bel); err != nil {
		log.WarningLog.Printf("failed to ring bell: %v", err)
	}
}

func (b *Bell) PrepareNext() {
	b.mu.Lock()
	b.armed = true
	b.mu.Unlock()
}

// BellFactory returns a Factory producing Bells on w.
func BellFactory(w io.Writer) Factory {
	return func() Generator { return NewBell(w) }
}

// Log records each pulse in the info log.
type Log struct {
	name  string
	count int
}

// NewLog returns a Log generator labelled name.
func NewLog(name string) *Log {
	return &Log{name: name}
}

func (l *Log) Notify() {
	l.count++
	log.InfoLog.Printf("%s: tick %d", l.name, l.count)
}

func (l *Log) PrepareNext() {}

// Count returns the number of pulses emitted.
func (l *Log) Count() int { return l.count }

// Multi fans a pulse out to several generators.
type Multi []Generator

func (m Multi) Notify() {
	for _, g := range m {
		g.Notify()
	}
}

func (m Multi) PrepareNext() {
	for _, g := range m {
		g.PrepareNext()
	}
}

// MultiFactory combines factories; each drag gets one generator from each.
func MultiFactory(factories ...Factory) Factory {
	return func() Generator {
		m := make(Multi, 0, len(factories))
		for _, f := range factories {
			if f != nil {
				m = append(m, f())
			}
		}
		return m
	}
}

// Func adapts a plain callback into a Generator. PrepareNext is a no-op.
type Func func()

func (f Func) Notify() {
	if f != nil {
		f()
	}
}

func (Func) PrepareNext() {}

// Haptics modes accepted in configuration.
const (
	ModeBell = "bell"
	ModeLog  = "log"
	ModeNone = "none"
)

// FactoryFor returns the factory for a configured haptics mode. Bell pulses are
// written to w.
func FactoryFor(mode string, w io.Writer) (Factory, error) {
	switch mode {
	case ModeBell:
		return BellFactory(w), nil
	case ModeLog:
		return func() Generator { return NewLog("slider") }, nil
	case ModeNone, "":
		return NoopFactory, nil
	default:
		return nil, fmt.Errorf("unknown haptics mode %q (must be %q, %q or %q)", mode, ModeBell, ModeLog, ModeNone)
	}
}

// Recorder counts pulses. The app uses it to display the tick counter and tests
// use it to observe the controller.
type Recorder struct {
	mu       sync.Mutex
	notifies int
	prepares int
	events   []string
}

func (r *Recorder) Notify() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifies++
	r.events = append(r.events, "notify")
}

func (r *Recorder) PrepareNext() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prepares++
	r.events = append(r.events, "prepare")
}

// Notifies returns the number of Notify calls.
func (r *Recorder) Notifies() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.notifies
}

// Prepares returns the number of PrepareNext calls.
func (r *Recorder) Prepares() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.prepares
}

// Events returns the call sequence, oldest first.
func (r *Recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

// Factory returns a Factory that always hands out r, so pulses from every drag
// accumulate in one place.
func (r *Recorder) Factory() Factory {
	return func() Generator { return r }
}
