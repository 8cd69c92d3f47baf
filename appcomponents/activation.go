package appcomponents

import "github.com/vcrobe/nojs-inviewport/signals"

// ActivationState is a per-item flag that goes from inactive to active
// exactly once and never back.
type ActivationState struct {
	active *signals.Signal[bool]
}

// NewActivationState returns an inactive state.
func NewActivationState() *ActivationState {
	return &ActivationState{active: signals.NewSignal(false)}
}

// Active reports whether the item has entered the viewport.
func (s *ActivationState) Active() bool {
	return s.active.Get()
}

// Activate marks the item active. It returns false if it already was.
func (s *ActivationState) Activate() bool {
	return s.active.Update(func(bool) bool { return true })
}

// Subscribe calls fn when the state becomes active.
func (s *ActivationState) Subscribe(fn func()) (unsubscribe func()) {
	return s.active.Subscribe(fn)
}

// Subscribers returns the number of live subscriptions.
func (s *ActivationState) Subscribers() int {
	return s.active.Subscribers()
}
