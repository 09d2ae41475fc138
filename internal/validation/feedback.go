package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// FeedbackInput is a candidate payload for a submitted review.
type FeedbackInput struct {
	Name    string
	Email   string
	Message string
	Rating  int
}

// FieldErrors maps a field name to the reasons it failed.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, reason string) {
	fe[field] = append(fe[field], reason)
}

// ValidateFeedback checks every field independently and returns the
// normalized payload together with all collected failures, so a client can
// correct every problem in one round-trip. The returned payload is only
// meaningful when the error map is empty.
func ValidateFeedback(in FeedbackInput) (FeedbackInput, FieldErrors) {
	errs := FieldErrors{}

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		errs.add("name", "Name cannot be empty.")
	case utf8.RuneCountInString(name) < 2:
		errs.add("name", "Name must be at least 2 characters long.")
	case utf8.RuneCountInString(name) > 100:
		errs.add("name", "Name cannot exceed 100 characters.")
	}

	// The email check is skipped for empty input: anonymous submissions
	// without an email address are accepted.
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email != "" && !emailPattern.MatchString(email) {
		errs.add("email", "Please enter a valid email address.")
	}

	message := strings.TrimSpace(in.Message)
	switch {
	case message == "":
		errs.add("message", "Message cannot be empty.")
	case utf8.RuneCountInString(message) < 10:
		errs.add("message", "Message must be at least 10 characters long.")
	case utf8.RuneCountInString(message) > 1000:
		errs.add("message", "Message cannot exceed 1000 characters.")
	}

	if in.Rating < 1 || in.Rating > 5 {
		errs.add("rating", "Rating must be between 1 and 5.")
	}

	if len(errs) > 0 {
		return FeedbackInput{}, errs
	}
	return FeedbackInput{Name: name, Email: email, Message: message, Rating: in.Rating}, nil
}
