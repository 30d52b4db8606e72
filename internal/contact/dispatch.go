package contact

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	DefaultChannelURL = "https://wa.me"
	DefaultRecipient  = "917449112303"

	// SuccessNotice is shown once the messaging app has been opened.
	SuccessNotice = "Redirecting to WhatsApp..."
)

var ErrInvalidSubmission = errors.New("contact: submission is not valid")

// Dispatcher turns a valid submission into a messaging-app deep link.
type Dispatcher struct {
	ChannelURL string
	Recipient  string
	validator  *Validator
}

// NewDispatcher returns a Dispatcher for recipient on the channel at channelURL.
// Empty arguments fall back to the WhatsApp defaults.
func NewDispatcher(channelURL, recipient string) *Dispatcher {
	if channelURL == "" {
		channelURL = DefaultChannelURL
	}
	if recipient == "" {
		recipient = DefaultRecipient
	}
	return &Dispatcher{
		ChannelURL: strings.TrimRight(channelURL, "/"),
		Recipient:  recipient,
		validator:  defaultValidator,
	}
}

// Payload is the text pre-filled in the messaging app.
func Payload(s Submission) string {
	s = s.Trimmed()
	return fmt.Sprintf("Hi, I am %s (\nEmail: %s) \n\n%s", s.Name, s.Email, s.Message)
}

// EscapeText percent-encodes text for the text query parameter: spaces as %20,
// line breaks as %0A and every reserved character escaped. Unlike encodeURIComponent
// it also escapes ! ' ( ) *.
func EscapeText(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// URL builds <channel>/<recipient>?text=<payload> for s. It refuses invalid submissions.
func (d *Dispatcher) URL(s Submission) (string, error) {
	if res := d.validator.Validate(s); !res.Valid() {
		return "", fmt.Errorf("%w: %w", ErrInvalidSubmission, res.Err())
	}
	return d.ChannelURL + "/" + url.PathEscape(d.Recipient) + "?text=" + EscapeText(Payload(s)), nil
}
