package main

import (
	"encoding/json"
	"net/http"

	"github.com/Mohamedyoonus/portfolio/internal/contact"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// dispatchedEvent is the HX-Trigger event the page script opens in a new tab.
const dispatchedEvent = "contact:dispatched"

func (s *server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", newContactView(contact.FormState{}))
}

// submitContact handles the contact form. HTMX requests get the re-rendered form
// back; plain form posts get the full page or a redirect to the messaging app.
func (s *server) submitContact(c *gin.Context) {
	sub := contact.Submission{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	}
	htmx := c.GetHeader("HX-Request") == "true"

	state, effect := s.form.Submit(sub)
	if effect.None() {
		s.logRejected(state)
		if htmx {
			c.HTML(http.StatusOK, "contact.html", newContactView(state))
			return
		}
		c.HTML(http.StatusUnprocessableEntity, "index.html", s.pageData("contact", state))
		return
	}

	s.log.Info("contact submission dispatched", zap.String("request_id", c.GetString(requestIDKey)))
	if !htmx {
		c.Redirect(http.StatusSeeOther, effect.OpenURL)
		return
	}

	trigger, err := json.Marshal(map[string]any{dispatchedEvent: gin.H{"url": effect.OpenURL}})
	if err != nil {
		c.Error(internalError(err))
		return
	}
	c.Header("HX-Trigger", string(trigger))
	c.HTML(http.StatusOK, "contact.html", newContactView(state))
}

// apiSubmitContact is the JSON flavour of submitContact.
func (s *server) apiSubmitContact(c *gin.Context) {
	var sub contact.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.Error(badRequest("Request body must be a JSON object with name, email and message"))
		return
	}

	state, effect := s.form.Submit(sub)
	if effect.None() {
		s.logRejected(state)
		respondError(c, http.StatusUnprocessableEntity, "Please correct the highlighted fields", state.Errors.Messages())
		return
	}

	s.log.Info("contact submission dispatched", zap.String("request_id", c.GetString(requestIDKey)))
	respondOK(c, http.StatusOK, state.Notice, gin.H{"url": effect.OpenURL})
}

// logRejected logs which fields failed, never their values.
func (s *server) logRejected(state contact.FormState) {
	fields := make([]string, 0, len(state.Errors))
	for _, f := range contact.Fields {
		if e, ok := state.Errors[f]; ok {
			fields = append(fields, string(f)+"="+e.Kind.String())
		}
	}
	s.log.Debug("contact submission rejected", zap.Strings("fields", fields))
}
