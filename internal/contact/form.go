package contact

// Phase is the controller state of the contact form.
type Phase int

const (
	Editing Phase = iota
	Validating
	Dispatched
)

func (p Phase) String() string {
	switch p {
	case Editing:
		return "Editing"
	case Validating:
		return "Validating"
	case Dispatched:
		return "Dispatched"
	default:
		return "Unknown"
	}
}

// FormState is everything the contact form renders. It is owned by the caller and
// only changed through Form.Update.
type FormState struct {
	Phase      Phase
	Submission Submission
	Errors     ValidationResult
	Notice     string
}

// Msg is an input event for the form.
type Msg interface {
	isMsg()
}

// FieldChanged records new text in one input.
type FieldChanged struct {
	Field Field
	Value string
}

// SubmitRequested is the user pressing send.
type SubmitRequested struct{}

// NoticeDismissed hides the success notice.
type NoticeDismissed struct{}

func (FieldChanged) isMsg()    {}
func (SubmitRequested) isMsg() {}
func (NoticeDismissed) isMsg() {}

// Effect is work Update asks the caller to perform. The zero Effect means nothing to do.
type Effect struct {
	// OpenURL is navigated to in a new browsing context.
	OpenURL string
}

// None reports whether the effect is empty.
func (e Effect) None() bool {
	return e.OpenURL == ""
}

// Form is the contact form controller.
type Form struct {
	validator  *Validator
	dispatcher *Dispatcher

	// OnTransition, when set, observes every phase change.
	OnTransition func(from, to Phase)
}

// NewForm wires a controller to dispatcher.
func NewForm(dispatcher *Dispatcher) *Form {
	return &Form{validator: defaultValidator, dispatcher: dispatcher}
}

func (f *Form) enter(s *FormState, to Phase) {
	if f.OnTransition != nil {
		f.OnTransition(s.Phase, to)
	}
	s.Phase = to
}

// Update applies msg to state and returns the next state. All transitions are
// synchronous; a submit always ends back in Editing.
func (f *Form) Update(state FormState, msg Msg) (FormState, Effect) {
	switch m := msg.(type) {
	case FieldChanged:
		state.Submission = state.Submission.With(m.Field, m.Value)
		state.Notice = ""
		return state, Effect{}

	case NoticeDismissed:
		state.Notice = ""
		return state, Effect{}

	case SubmitRequested:
		f.enter(&state, Validating)
		result := f.validator.Validate(state.Submission)
		if !result.Valid() {
			state.Errors = result
			state.Notice = ""
			f.enter(&state, Editing)
			return state, Effect{}
		}

		link, err := f.dispatcher.URL(state.Submission)
		if err != nil {
			// Unreachable: the submission was validated above.
			f.enter(&state, Editing)
			return state, Effect{}
		}
		f.enter(&state, Dispatched)

		state.Submission = Submission{}
		state.Errors = nil
		state.Notice = SuccessNotice
		f.enter(&state, Editing)
		return state, Effect{OpenURL: link}
	}
	return state, Effect{}
}

// Submit runs a fresh form through the edits in s followed by a submit.
func (f *Form) Submit(s Submission) (FormState, Effect) {
	state := FormState{}
	for _, field := range Fields {
		state, _ = f.Update(state, FieldChanged{Field: field, Value: s.Get(field)})
	}
	return f.Update(state, SubmitRequested{})
}
