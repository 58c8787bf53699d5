package agent

// Adapter lets an agent built for observation type O operate inside a
// context that only exposes a state type S, by converting every incoming
// state through a caller-supplied pure mapping.
//
// The adapter is a transparent proxy: it holds no mode or learning state of
// its own, introduces no buffering or reordering, and its behavior is
// observationally equivalent to calling the inner agent directly with
// already-converted values. Because Adapter itself satisfies Agent[S, A],
// adapters chain.
//
// The inner agent may also be used directly elsewhere; the adapter and the
// direct reference share the same underlying agent state.
type Adapter[S, O, A any] struct {
	inner   Agent[O, A]
	convert Convert[S, O]
}

// Adapt wraps inner so it can act on states of type S. The inner agent and
// conversion function are fixed for the adapter's lifetime. Returns
// ErrNilAgent or ErrNilConversion if either is nil.
func Adapt[S, O, A any](inner Agent[O, A], convert Convert[S, O]) (*Adapter[S, O, A], error) {
	if inner == nil {
		return nil, ErrNilAgent
	}
	if convert == nil {
		return nil, ErrNilConversion
	}
	return &Adapter[S, O, A]{inner: inner, convert: convert}, nil
}

// Mode reports the inner agent's mode; the adapter has none of its own.
func (ad *Adapter[S, O, A]) Mode() Mode {
	return ad.inner.Mode()
}

// Act converts the state and delegates to the inner agent, returning its
// action unchanged. A conversion failure propagates to the caller
// unmodified.
func (ad *Adapter[S, O, A]) Act(state S) (A, error) {
	obs, err := ad.convert(state)
	if err != nil {
		var zero A
		return zero, err
	}
	return ad.inner.Act(obs)
}

// Record converts state and next independently, one conversion call per
// argument, and delegates to the inner agent. A conversion failure
// propagates to the caller unmodified.
func (ad *Adapter[S, O, A]) Record(state S, action A, reward float64, next S) error {
	obs, err := ad.convert(state)
	if err != nil {
		return err
	}
	nextObs, err := ad.convert(next)
	if err != nil {
		return err
	}
	return ad.inner.Record(obs, action, reward, nextObs)
}

// Reset delegates to the inner agent.
func (ad *Adapter[S, O, A]) Reset() {
	ad.inner.Reset()
}

// TrainingMode delegates to the inner agent.
func (ad *Adapter[S, O, A]) TrainingMode() {
	ad.inner.TrainingMode()
}

// TestMode delegates to the inner agent.
func (ad *Adapter[S, O, A]) TestMode() {
	ad.inner.TestMode()
}
