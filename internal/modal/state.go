package modal

// State is the lifecycle position of the detail overlay.
type State string

const (
	StateClosed  State = "closed"
	StateOpening State = "opening"
	StateOpen    State = "open"
	StateClosing State = "closing"
)

// Trigger names what moved the session from one state to another.
type Trigger string

const (
	TriggerOpen     Trigger = "open"
	TriggerEntered  Trigger = "entered"
	TriggerClose    Trigger = "close"
	TriggerFinalize Trigger = "finalize"
)

// Transition is one edge of the overlay state machine.
type Transition struct {
	From    State
	To      State
	Trigger Trigger
}

// AllTransitions returns every allowed state change.
// Opening and Closing can each be superseded by the opposite intent.
func AllTransitions() []Transition {
	return []Transition{
		{From: StateClosed, To: StateOpening, Trigger: TriggerOpen},
		{From: StateOpening, To: StateOpen, Trigger: TriggerEntered},
		{From: StateOpening, To: StateClosing, Trigger: TriggerClose},
		{From: StateOpen, To: StateClosing, Trigger: TriggerClose},
		{From: StateClosing, To: StateOpening, Trigger: TriggerOpen},
		{From: StateClosing, To: StateClosed, Trigger: TriggerFinalize},
	}
}

// Next returns the state reached from `from` by trigger, if that edge exists.
func Next(from State, trigger Trigger) (State, bool) {
	for _, t := range AllTransitions() {
		if t.From == from && t.Trigger == trigger {
			return t.To, true
		}
	}
	return from, false
}

// IsVisible reports whether the overlay counts as open: Opening and Open.
func (s State) IsVisible() bool {
	return s == StateOpening || s == StateOpen
}
