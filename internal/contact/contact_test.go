package contact

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validForm() Form {
	return Form{Name: "Ada", Email: "ada@example.com", Subject: "Hello", Message: "We need a site."}
}

func TestFormFromValuesTrims(t *testing.T) {
	t.Parallel()

	v := url.Values{}
	v.Set(FieldName, "  Ada ")
	v.Set(FieldEmail, " ada@example.com")
	v.Set(FieldMessage, "hi\n")
	f := FormFromValues(v)
	require.Equal(t, Form{Name: "Ada", Email: "ada@example.com", Message: "hi"}, f)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.Nil(t, validForm().Validate())

	cases := []struct {
		name  string
		edit  func(*Form)
		field string
	}{
		{"missing name", func(f *Form) { f.Name = "" }, FieldName},
		{"long name", func(f *Form) { f.Name = strings.Repeat("a", maxNameLen+1) }, FieldName},
		{"missing email", func(f *Form) { f.Email = "" }, FieldEmail},
		{"bad email", func(f *Form) { f.Email = "not-an-email" }, FieldEmail},
		{"display name", func(f *Form) { f.Email = "Ada <ada@example.com>" }, FieldEmail},
		{"no domain dot", func(f *Form) { f.Email = "ada@localhost" }, FieldEmail},
		{"long subject", func(f *Form) { f.Subject = strings.Repeat("s", maxSubjectLen+1) }, FieldSubject},
		{"missing message", func(f *Form) { f.Message = "" }, FieldMessage},
		{"long message", func(f *Form) { f.Message = strings.Repeat("m", maxMessageLen+1) }, FieldMessage},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := validForm()
			tc.edit(&f)
			errs := f.Validate()
			require.Len(t, errs, 1)
			require.True(t, errs.Has(tc.field))
		})
	}
}

func TestSubjectIsOptional(t *testing.T) {
	t.Parallel()

	f := validForm()
	f.Subject = ""
	require.Nil(t, f.Validate())
}

type recordingSink struct {
	got []Submission
	err error
}

func (r *recordingSink) Submit(_ context.Context, s Submission) error {
	r.got = append(r.got, s)
	return r.err
}

func TestAccept(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	sink := &recordingSink{}

	sub, errs, err := Accept(context.Background(), sink, validForm(), now)
	require.NoError(t, err)
	require.Nil(t, errs)
	require.Len(t, sink.got, 1)
	require.Equal(t, sub, sink.got[0])
	require.Equal(t, now, sub.ReceivedAt)
	require.Len(t, sub.Reference(), 8)

	bad := validForm()
	bad.Email = "nope"
	sub, errs, err = Accept(context.Background(), sink, bad, now)
	require.NoError(t, err)
	require.True(t, errs.Has(FieldEmail))
	require.Zero(t, sub)
	require.Len(t, sink.got, 1)
}

func TestAcceptSinkError(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{err: errors.New("down")}
	_, _, err := Accept(context.Background(), sink, validForm(), time.Now())
	require.ErrorContains(t, err, "down")
}

func TestLogSink(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := LogSink{Logger: log.New(&buf, "", 0)}
	sub, _, err := Accept(context.Background(), sink, validForm(), time.Now())
	require.NoError(t, err)
	require.Contains(t, buf.String(), sub.ID.String())
	require.Contains(t, buf.String(), "ada@example.com")
}
