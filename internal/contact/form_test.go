package contact_test

import (
	"testing"

	"github.com/Mohamedyoonus/portfolio/internal/contact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trace struct {
	phases []contact.Phase
}

func (tr *trace) observe(from, to contact.Phase) {
	if len(tr.phases) == 0 {
		tr.phases = append(tr.phases, from)
	}
	tr.phases = append(tr.phases, to)
}

func newForm() (*contact.Form, *trace) {
	tr := &trace{}
	f := contact.NewForm(contact.NewDispatcher("", ""))
	f.OnTransition = tr.observe
	return f, tr
}

func TestFormSubmitValid(t *testing.T) {
	f, tr := newForm()

	state, effect := f.Submit(contact.Submission{Name: "Alice", Email: "alice@example.com", Message: "Hi"})

	assert.Equal(t, []contact.Phase{contact.Editing, contact.Validating, contact.Dispatched, contact.Editing}, tr.phases)
	assert.Equal(t, contact.Editing, state.Phase)
	assert.True(t, state.Submission.IsZero(), "fields reset after dispatch")
	assert.Empty(t, state.Errors)
	assert.Equal(t, contact.SuccessNotice, state.Notice)

	require.False(t, effect.None())
	assert.Contains(t, effect.OpenURL, "917449112303")
	assert.Contains(t, effect.OpenURL, "text=Hi%2C%20I%20am%20Alice")
}

func TestFormSubmitInvalid(t *testing.T) {
	f, tr := newForm()

	in := contact.Submission{Name: "", Email: "bad", Message: ""}
	state, effect := f.Submit(in)

	assert.Equal(t, []contact.Phase{contact.Editing, contact.Validating, contact.Editing}, tr.phases)
	assert.True(t, effect.None(), "dispatcher must not run")
	assert.Equal(t, in, state.Submission, "input kept for correction")
	assert.Equal(t, contact.Editing, state.Phase)
	assert.Empty(t, state.Notice)
	require.Len(t, state.Errors, 3)
	assert.Equal(t, contact.MissingField, state.Errors[contact.FieldName].Kind)
	assert.Equal(t, contact.InvalidFormat, state.Errors[contact.FieldEmail].Kind)
	assert.Equal(t, contact.MissingField, state.Errors[contact.FieldMessage].Kind)
}

func TestFormRecoversAfterFailure(t *testing.T) {
	f, _ := newForm()

	state, effect := f.Update(contact.FormState{}, contact.SubmitRequested{})
	require.True(t, effect.None())
	require.Len(t, state.Errors, 3)

	state, _ = f.Update(state, contact.FieldChanged{Field: contact.FieldName, Value: "Bob"})
	state, _ = f.Update(state, contact.FieldChanged{Field: contact.FieldEmail, Value: "bob@x.com"})
	assert.Len(t, state.Errors, 3, "errors stay until the next submit")

	state, _ = f.Update(state, contact.FieldChanged{Field: contact.FieldMessage, Value: "hey"})
	state, effect = f.Update(state, contact.SubmitRequested{})

	assert.False(t, effect.None())
	assert.Empty(t, state.Errors)
	assert.True(t, state.Submission.IsZero())
}

func TestFormNoticeLifecycle(t *testing.T) {
	f, _ := newForm()

	state, _ := f.Submit(contact.Submission{Name: "A", Email: "a@b.c", Message: "m"})
	require.Equal(t, contact.SuccessNotice, state.Notice)

	dismissed, effect := f.Update(state, contact.NoticeDismissed{})
	assert.Empty(t, dismissed.Notice)
	assert.True(t, effect.None())

	edited, _ := f.Update(state, contact.FieldChanged{Field: contact.FieldName, Value: "B"})
	assert.Empty(t, edited.Notice)
	assert.Equal(t, "B", edited.Submission.Name)
}

func TestFormUpdateDoesNotMutateInput(t *testing.T) {
	f, _ := newForm()

	before := contact.FormState{Submission: contact.Submission{Name: "A", Email: "a@b.c", Message: "m"}}
	_, _ = f.Update(before, contact.SubmitRequested{})

	assert.Equal(t, "A", before.Submission.Name)
	assert.Equal(t, contact.Editing, before.Phase)
}
