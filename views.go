package main

import (
	"github.com/Mohamedyoonus/portfolio/internal/contact"
	"github.com/Mohamedyoonus/portfolio/internal/content"
	"github.com/Mohamedyoonus/portfolio/internal/navigation"
)

// contactView is what contact.html renders.
type contactView struct {
	Name    string
	Email   string
	Message string
	Errors  map[string]string
	Notice  string
}

func newContactView(state contact.FormState) contactView {
	return contactView{
		Name:    state.Submission.Name,
		Email:   state.Submission.Email,
		Message: state.Submission.Message,
		Errors:  state.Errors.Messages(),
		Notice:  state.Notice,
	}
}

// navView is what nav.html renders.
type navView struct {
	Links    []content.NavLink
	Active   string
	MenuOpen bool
	Scrolled bool
}

func (s *server) navView(state navigation.NavState) navView {
	return navView{
		Links:    s.site.Nav,
		Active:   state.Active,
		MenuOpen: state.MenuOpen,
		Scrolled: state.Scrolled,
	}
}
