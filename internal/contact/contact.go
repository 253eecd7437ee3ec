// Package contact validates contact form posts and hands accepted submissions
// to a Sink. Nothing is stored.
package contact

import (
	"context"
	"fmt"
	"log"
	"net/mail"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Form field names, shared by the HTML form and the error map.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

const (
	maxNameLen    = 100
	maxEmailLen   = 254
	maxSubjectLen = 150
	maxMessageLen = 5000
)

// Form is what the visitor typed.
type Form struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// FormFromValues reads a posted form. Values are trimmed.
func FormFromValues(v url.Values) Form {
	return Form{
		Name:    strings.TrimSpace(v.Get(FieldName)),
		Email:   strings.TrimSpace(v.Get(FieldEmail)),
		Subject: strings.TrimSpace(v.Get(FieldSubject)),
		Message: strings.TrimSpace(v.Get(FieldMessage)),
	}
}

// FieldErrors maps a field name to a message for the visitor.
type FieldErrors map[string]string

// Has reports whether field failed validation; it is used by templates.
func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Validate checks required fields and lengths. It returns nil when the form
// is acceptable.
func (f Form) Validate() FieldErrors {
	errs := FieldErrors{}
	switch {
	case f.Name == "":
		errs[FieldName] = "Please tell us your name."
	case utf8.RuneCountInString(f.Name) > maxNameLen:
		errs[FieldName] = fmt.Sprintf("Name must be at most %d characters.", maxNameLen)
	}
	switch {
	case f.Email == "":
		errs[FieldEmail] = "Please enter your email address."
	case len(f.Email) > maxEmailLen || !validEmail(f.Email):
		errs[FieldEmail] = "Please enter a valid email address."
	}
	if utf8.RuneCountInString(f.Subject) > maxSubjectLen {
		errs[FieldSubject] = fmt.Sprintf("Subject must be at most %d characters.", maxSubjectLen)
	}
	switch {
	case f.Message == "":
		errs[FieldMessage] = "Please write a message."
	case utf8.RuneCountInString(f.Message) > maxMessageLen:
		errs[FieldMessage] = fmt.Sprintf("Message must be at most %d characters.", maxMessageLen)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validEmail accepts a bare address only, no display name.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@"):], ".")
}

// Submission is an accepted form with its reference.
type Submission struct {
	ID         uuid.UUID
	Form       Form
	ReceivedAt time.Time
}

// Reference is the short code shown to the visitor.
func (s Submission) Reference() string {
	return strings.ToUpper(s.ID.String()[:8])
}

// Sink receives accepted submissions.
type Sink interface {
	Submit(ctx context.Context, s Submission) error
}

// LogSink writes submissions to a logger. A nil Logger uses the standard one.
type LogSink struct {
	Logger *log.Logger
}

func (l LogSink) Submit(_ context.Context, s Submission) error {
	logf := log.Printf
	if l.Logger != nil {
		logf = l.Logger.Printf
	}
	logf("Contact submission %s from %q <%s>: subject=%q, %d characters",
		s.ID, s.Form.Name, s.Form.Email, s.Form.Subject, utf8.RuneCountInString(s.Form.Message))
	return nil
}

// Accept validates f and, when valid, passes it to sink. Field errors are
// returned with a zero Submission and a nil error.
func Accept(ctx context.Context, sink Sink, f Form, now time.Time) (Submission, FieldErrors, error) {
	if errs := f.Validate(); errs != nil {
		return Submission{}, errs, nil
	}
	sub := Submission{ID: uuid.New(), Form: f, ReceivedAt: now}
	if err := sink.Submit(ctx, sub); err != nil {
		return Submission{}, nil, fmt.Errorf("could not deliver contact submission: %w", err)
	}
	return sub, nil, nil
}
