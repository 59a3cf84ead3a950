package iostate

// Stateful is an output resource whose formatting state can be read and
// replaced as a whole.
type Stateful[S any] interface {
	State() S
	SetState(S)
}

// noCopy marks Saver as non-copyable for go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Saver holds the state captured from a resource. A Saver must not be
// copied; each one corresponds to exactly one capture.
type Saver[S any] struct {
	_ noCopy

	r        Stateful[S]
	saved    S
	restored bool
}

// Save captures the current state of r.
func Save[S any](r Stateful[S]) *Saver[S] {
	return &Saver[S]{r: r, saved: r.State()}
}

// Saved returns the captured state.
func (s *Saver[S]) Saved() S {
	return s.saved
}

// Restore puts the captured state back. Only the first call has an effect.
func (s *Saver[S]) Restore() {
	if s.restored {
		return
	}
	s.restored = true
	s.r.SetState(s.saved)
}

// Guard runs fn and restores the state of r afterwards, whether fn returns
// normally, returns an error or panics.
func Guard[S any](r Stateful[S], fn func() error) error {
	defer Save(r).Restore()
	return fn()
}
