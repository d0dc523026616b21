package registration

import "errors"

// State is a step of the registration saga.
type State string

const (
	StateStarted           State = "started"
	StateCredentialCreated State = "credential_created"
	StateCompanyCreated    State = "company_created"
	StateSurveyPending     State = "survey_pending"
	StateCompleted         State = "completed"
	StateRolledBack        State = "rolled_back"
	StateFailed            State = "failed"
)

// Event drives a transition.
type Event string

const (
	EventCredentialCreated Event = "credential_created"
	EventCompanyCreated    Event = "company_created"
	EventCompanyFailed     Event = "company_failed"
	EventSurveyRequired    Event = "survey_required"
	EventSurveySaved       Event = "survey_saved"
	EventLoggedIn          Event = "logged_in"
	EventStepFailed        Event = "step_failed"
)

// Compensation names the undo action a transition requires.
type Compensation string

const (
	CompensateNone       Compensation = ""
	CompensateDeleteUser Compensation = "delete_user"
)

var ErrIllegalTransition = errors.New("illegal registration transition")

type transition struct {
	next       State
	compensate Compensation
}

// transitions is the complete table; any (state, event) pair absent from it is illegal.
var transitions = map[State]map[Event]transition{
	StateStarted: {
		EventCredentialCreated: {next: StateCredentialCreated},
		EventStepFailed:        {next: StateFailed},
	},
	StateCredentialCreated: {
		EventCompanyCreated: {next: StateCompanyCreated},
		EventCompanyFailed:  {next: StateRolledBack, compensate: CompensateDeleteUser},
		// Accounts without a company log in straight after the credential step.
		EventLoggedIn:   {next: StateCompleted},
		EventStepFailed: {next: StateFailed},
	},
	StateCompanyCreated: {
		EventSurveyRequired: {next: StateSurveyPending},
		EventLoggedIn:       {next: StateCompleted},
		EventStepFailed:     {next: StateFailed},
	},
	StateSurveyPending: {
		EventSurveySaved: {next: StateSurveyPending},
		EventLoggedIn:    {next: StateCompleted},
		EventStepFailed:  {next: StateSurveyPending},
	},
}

func (s State) Terminal() bool {
	switch s {
	case StateCompleted, StateRolledBack, StateFailed:
		return true
	case StateStarted, StateCredentialCreated, StateCompanyCreated, StateSurveyPending:
		return false
	default:
		return true
	}
}

// Next returns the state reached from s on e and the compensation that must run.
func Next(s State, e Event) (State, Compensation, error) {
	byEvent, ok := transitions[s]
	if !ok {
		return s, CompensateNone, ErrIllegalTransition
	}
	t, ok := byEvent[e]
	if !ok {
		return s, CompensateNone, ErrIllegalTransition
	}
	return t.next, t.compensate, nil
}

// Machine records the path a single registration took.
type Machine struct {
	state   State
	history []State
}

func NewMachine() *Machine {
	return &Machine{state: StateStarted, history: []State{StateStarted}}
}

// Resume continues a saga that paused in a non-terminal state, e.g. a pending survey.
func Resume(s State) *Machine {
	return &Machine{state: s, history: []State{s}}
}

func (m *Machine) State() State { return m.state }

func (m *Machine) History() []State {
	out := make([]State, len(m.history))
	copy(out, m.history)
	return out
}

func (m *Machine) Fire(e Event) (Compensation, error) {
	next, comp, err := Next(m.state, e)
	if err != nil {
		return CompensateNone, err
	}
	m.state = next
	if m.history[len(m.history)-1] != next {
		m.history = append(m.history, next)
	}
	return comp, nil
}
