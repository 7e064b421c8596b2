package maps

// Phase is the position of a request in its validate, build and get sequence.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseConfigured
	PhaseValidated
	PhaseBuilt
	PhaseExecuted
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseConfigured:
		return "configured"
	case PhaseValidated:
		return "validated"
	case PhaseBuilt:
		return "built"
	case PhaseExecuted:
		return "executed"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// Lifecycle tracks the phase of a single request and holds the query string
// produced by Build. Request types embed it by value; it is not safe for
// concurrent use.
type Lifecycle struct {
	api   API
	phase Phase
	query string
}

// NewLifecycle returns a lifecycle in the Empty phase.
func NewLifecycle(api API) Lifecycle {
	return Lifecycle{api: api}
}

// Phase returns the current phase.
func (l *Lifecycle) Phase() Phase { return l.phase }

// Query returns the built query string, or "" before Build.
func (l *Lifecycle) Query() string { return l.query }

// spent reports a request that was sent or failed validation.
func (l *Lifecycle) spent() bool {
	return l.phase == PhaseExecuted || l.phase == PhaseFailed
}

// Touch records a setter call. Any earlier validation or build is discarded.
// Spent requests stay spent.
func (l *Lifecycle) Touch() {
	if l.spent() {
		return
	}
	l.phase = PhaseConfigured
	l.query = ""
}

// Fail records a broken validation rule. The request cannot be used again.
func (l *Lifecycle) Fail() {
	l.phase = PhaseFailed
	l.query = ""
}

// Validated records a successful validation.
func (l *Lifecycle) Validated() error {
	if l.spent() {
		return NewSequenceError(l.api, KindRequestAlreadyExecuted)
	}
	l.phase = PhaseValidated
	l.query = ""
	return nil
}

// CheckValidate reports whether Validate may run.
func (l *Lifecycle) CheckValidate() error {
	if l.spent() {
		return NewSequenceError(l.api, KindRequestAlreadyExecuted)
	}
	return nil
}

// CheckBuild reports whether Build may run.
func (l *Lifecycle) CheckBuild() error {
	switch l.phase {
	case PhaseExecuted, PhaseFailed:
		return NewSequenceError(l.api, KindRequestAlreadyExecuted)
	case PhaseValidated, PhaseBuilt:
		return nil
	}
	return NewSequenceError(l.api, KindRequestNotValidated)
}

// Built stores the rendered query string.
func (l *Lifecycle) Built(query string) {
	l.phase = PhaseBuilt
	l.query = query
}

// Begin checks that Get may run and moves the request to Executed. The
// request is spent whether or not the call that follows succeeds.
func (l *Lifecycle) Begin() (string, error) {
	switch l.phase {
	case PhaseExecuted, PhaseFailed:
		return "", NewSequenceError(l.api, KindRequestAlreadyExecuted)
	case PhaseBuilt:
		l.phase = PhaseExecuted
		return l.query, nil
	}
	return "", NewSequenceError(l.api, KindQueryNotBuilt)
}
