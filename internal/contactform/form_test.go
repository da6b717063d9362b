package contactform

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bellavista/internal/contact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmitter struct {
	mu    sync.Mutex
	calls []contact.Input
	err   error
	block chan struct{}
}

func (f *fakeSubmitter) Submit(ctx context.Context, in contact.Input) (*contact.Submission, error) {
	f.mu.Lock()
	f.calls = append(f.calls, in)
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	if f.err != nil {
		return nil, f.err
	}
	return &contact.Submission{ID: "sub-1", Input: in, CreatedAt: time.Now().UTC()}, nil
}

func (f *fakeSubmitter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func johnDoe() contact.Input {
	return contact.Input{FirstName: "John", LastName: "Doe", Email: "john@example.com"}
}

func TestSubmit_EmptyFirstNameNeverCallsSubmitter(t *testing.T) {
	sub := &fakeSubmitter{}
	form := New(sub)
	defer form.Close()

	in := johnDoe()
	in.FirstName = ""
	form.SetFields(in)

	err := form.Submit(context.Background())
	require.Error(t, err)

	assert.Equal(t, 0, sub.callCount())
	assert.Equal(t, StateIdle, form.State())
	assert.Equal(t, "First name is required", form.FieldErrors()["firstName"])
	assert.Nil(t, form.Notification())
	assert.Equal(t, in, form.Fields())
}

func TestSubmit_BadEmailReferencesEmailField(t *testing.T) {
	form := New(&fakeSubmitter{})
	defer form.Close()

	in := johnDoe()
	in.Email = "not-an-email"
	form.SetFields(in)

	err := form.Submit(context.Background())
	ve, ok := contact.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, contact.FieldErrors{"email": "Please enter a valid email address"}, ve.Fields)
	assert.Contains(t, form.FieldErrors(), "email")
}

func TestSubmit_SuccessResetsFieldsThenIdle(t *testing.T) {
	sub := &fakeSubmitter{}
	form := New(sub, WithDisplayDuration(20*time.Millisecond))
	defer form.Close()

	in := johnDoe()
	in.SpecialRequests = "Anniversary"
	form.SetFields(in)

	require.NoError(t, form.Submit(context.Background()))

	assert.Equal(t, StateSucceeded, form.State())
	assert.Equal(t, contact.Input{}, form.Fields())
	assert.Empty(t, form.FieldErrors())
	require.Len(t, sub.calls, 1)
	assert.Equal(t, in, sub.calls[0])

	notice := form.Notification()
	require.NotNil(t, notice)
	assert.Equal(t, NoticeSuccess, notice.Kind)
	assert.Equal(t, SuccessTitle, notice.Title)
	assert.Equal(t, "sub-1", form.LastSubmission().ID)

	assert.Eventually(t, func() bool { return form.State() == StateIdle }, time.Second, 5*time.Millisecond)
	assert.Nil(t, form.Notification())
}

func TestSubmit_FailureKeepsFields(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("dial tcp: connection refused")}
	form := New(sub, WithDisplayDuration(20*time.Millisecond))
	defer form.Close()

	form.SetFields(johnDoe())
	err := form.Submit(context.Background())
	require.Error(t, err)

	assert.Equal(t, StateFailed, form.State())
	assert.Equal(t, johnDoe(), form.Fields())

	notice := form.Notification()
	require.NotNil(t, notice)
	assert.Equal(t, NoticeError, notice.Kind)
	assert.Equal(t, "dial tcp: connection refused", notice.Message)

	assert.Eventually(t, func() bool { return form.State() == StateIdle }, time.Second, 5*time.Millisecond)
	assert.Equal(t, johnDoe(), form.Fields())
}

func TestSubmit_RemoteErrorMessageIsShown(t *testing.T) {
	form := New(&fakeSubmitter{err: &RemoteError{StatusCode: 500, Message: "failed to save submission"}})
	defer form.Close()

	form.SetFields(johnDoe())
	require.Error(t, form.Submit(context.Background()))
	assert.Equal(t, "failed to save submission", form.Notification().Message)
}

func TestSubmit_SecondSubmitWhileInFlight(t *testing.T) {
	sub := &fakeSubmitter{block: make(chan struct{})}
	form := New(sub)
	defer form.Close()
	form.SetFields(johnDoe())

	done := make(chan error, 1)
	go func() { done <- form.Submit(context.Background()) }()

	require.Eventually(t, func() bool { return form.State() == StateSubmitting }, time.Second, time.Millisecond)

	assert.ErrorIs(t, form.Submit(context.Background()), ErrSubmitting)
	form.Dismiss()
	assert.Equal(t, StateSubmitting, form.State())

	close(sub.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, sub.callCount())
}

func TestDismiss_ReturnsToIdleEarly(t *testing.T) {
	form := New(&fakeSubmitter{})
	defer form.Close()

	form.SetFields(johnDoe())
	require.NoError(t, form.Submit(context.Background()))
	require.Equal(t, StateSucceeded, form.State())

	form.Dismiss()
	assert.Equal(t, StateIdle, form.State())
	assert.Nil(t, form.Notification())
}

func TestFailureMessage_FallsBackToGeneric(t *testing.T) {
	assert.Equal(t, GenericFailure, failureMessage(errors.New("")))
	assert.Equal(t, GenericFailure, failureMessage(&RemoteError{StatusCode: 502, Message: GenericFailure}))
}

func TestSimulatedSubmitter_AlwaysSucceeds(t *testing.T) {
	form := New(NewSimulatedSubmitter(10*time.Millisecond, nil))
	defer form.Close()

	form.SetFields(johnDoe())
	start := time.Now()
	require.NoError(t, form.Submit(context.Background()))

	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	assert.Equal(t, StateSucceeded, form.State())
	assert.Nil(t, form.LastSubmission())
	assert.Equal(t, contact.Input{}, form.Fields())
}

func TestSimulatedSubmitter_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSimulatedSubmitter(time.Hour, nil).Submit(ctx, johnDoe())
	assert.ErrorIs(t, err, context.Canceled)
}
