package validator

import (
	"net/mail"
	"regexp"
	"strings"
)

// ValidationError is a single field failure. Field may be empty for
// failures that concern the request as a whole, such as malformed JSON.
type ValidationError struct {
	Field   string
	Message string
}

// String renders the error as "<field>: <message>", or just the message
// when there is no field path.
func (e ValidationError) String() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	return strings.Join(v.Messages(), "; ")
}

// Messages returns the rendered message of every error, in order.
func (v ValidationErrors) Messages() []string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.String())
	}
	return msgs
}

var domainLabelRegex = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9\-]*[a-zA-Z0-9])?$`)
var tldRegex = regexp.MustCompile(`^[a-zA-Z]{2,}$`)

// NormalizeEmail validates a bare address (no display name, no angle
// brackets) and returns it with the domain lowercased. The local part may
// use any RFC 5322 atext character; the domain needs at least two labels.
func NormalizeEmail(email string) (string, bool) {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Name != "" || addr.Address != email {
		return "", false
	}

	at := strings.LastIndex(email, "@")
	local, domain := email[:at], email[at+1:]

	labels := strings.Split(domain, ".")
	if len(labels) < 2 || !tldRegex.MatchString(labels[len(labels)-1]) {
		return "", false
	}
	for _, label := range labels {
		if !domainLabelRegex.MatchString(label) {
			return "", false
		}
	}

	return local + "@" + strings.ToLower(domain), true
}

// IsValidEmail reports whether email is an address NormalizeEmail accepts.
func IsValidEmail(email string) bool {
	_, ok := NormalizeEmail(email)
	return ok
}

var dateFormatRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsDateFormat reports whether s has the YYYY-MM-DD shape. It does not
// check that the date exists on the calendar: "2024-13-99" passes.
func IsDateFormat(s string) bool {
	return dateFormatRegex.MatchString(s)
}
