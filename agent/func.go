package agent

// Func is an agent backed by a caller-supplied act function, with no-op
// learning. It is the minimal way to satisfy the Agent contract without
// declaring a new type, handy for scripted agents and test doubles.
type Func[O, A any] struct {
	Base
	NoLearn[O, A]

	act func(O) (A, error)
}

// NewFunc returns an agent whose Act delegates to fn. Returns ErrNilActFunc
// if fn is nil.
func NewFunc[O, A any](fn func(O) (A, error)) (*Func[O, A], error) {
	if fn == nil {
		return nil, ErrNilActFunc
	}
	return &Func[O, A]{act: fn}, nil
}

// Act invokes the configured function.
func (f *Func[O, A]) Act(obs O) (A, error) {
	return f.act(obs)
}
