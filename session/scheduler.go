package session

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Handle identifies one scheduled callback.
type Handle struct {
	tween *gween.Tween
}

type action struct {
	onFinish []func()
}

func (a *action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

// Scheduler runs callbacks after a delay measured in the same unit as the
// dt passed to Update (seconds in the game). It is not safe for concurrent use;
// the owner steps it from its update loop.
type Scheduler struct {
	tweens map[*gween.Tween]*action
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		tweens: make(map[*gween.Tween]*action),
	}
}

func (s *Scheduler) After(delay float32, f func()) *Handle {
	t := gween.New(0, 1, delay, ease.Linear)
	a := &action{}
	a.addOnFinish(f)
	s.tweens[t] = a
	return &Handle{tween: t}
}

// Cancel reports whether the callback was still pending.
func (s *Scheduler) Cancel(h *Handle) bool {
	if h == nil {
		return false
	}
	if _, found := s.tweens[h.tween]; !found {
		return false
	}
	delete(s.tweens, h.tween)
	return true
}

func (s *Scheduler) Pending() int {
	return len(s.tweens)
}

func (s *Scheduler) Update(dt float32) {
	finished := make([]*gween.Tween, 0)
	for t := range s.tweens {
		if _, done := t.Update(dt); done {
			finished = append(finished, t)
		}
	}
	// callbacks may cancel each other or schedule new ones
	for _, t := range finished {
		a, found := s.tweens[t]
		if !found {
			continue
		}
		delete(s.tweens, t)
		for _, onFinish := range a.onFinish {
			onFinish()
		}
	}
}
