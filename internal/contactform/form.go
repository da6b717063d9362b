// Package contactform is the client half of the contact/reservation form:
// local validation, a single in-flight submission, and the notification
// shown afterwards.
package contactform

import (
	"context"
	"errors"
	"sync"
	"time"

	"bellavista/internal/contact"

	"go.uber.org/zap"
)

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// DefaultDisplayDuration is how long a notification stays up before the
// form drops back to idle on its own.
const DefaultDisplayDuration = 5 * time.Second

const (
	SuccessTitle   = "Message Sent Successfully!"
	SuccessMessage = "Thank you for contacting us. We'll get back to you soon."
	GenericFailure = "Something went wrong. Please try again later."
)

// ErrSubmitting is returned while a previous submission is still in flight.
var ErrSubmitting = errors.New("a submission is already in progress")

// Submitter delivers a validated payload. The simulated and remote
// strategies are alternatives; a form uses exactly one.
type Submitter interface {
	Submit(ctx context.Context, in contact.Input) (*contact.Submission, error)
}

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

type Notification struct {
	Kind    NoticeKind
	Title   string
	Message string
}

type Form struct {
	mu sync.Mutex

	submitter   Submitter
	displayFor  time.Duration
	log         *zap.Logger
	state       State
	fields      contact.Input
	fieldErrors contact.FieldErrors
	notice      *Notification
	last        *contact.Submission
	resetTimer  *time.Timer
	resetGen    int
}

type Option func(*Form)

func WithDisplayDuration(d time.Duration) Option {
	return func(f *Form) { f.displayFor = d }
}

func WithLogger(log *zap.Logger) Option {
	return func(f *Form) { f.log = log }
}

func New(submitter Submitter, opts ...Option) *Form {
	f := &Form{
		submitter:  submitter,
		displayFor: DefaultDisplayDuration,
		log:        zap.NewNop(),
		state:      StateIdle,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) SetFields(in contact.Input) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = in
}

func (f *Form) Fields() contact.Input {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// FieldErrors are the inline messages from the last failed validation.
func (f *Form) FieldErrors() contact.FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(contact.FieldErrors, len(f.fieldErrors))
	for k, v := range f.fieldErrors {
		out[k] = v
	}
	return out
}

func (f *Form) Notification() *Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.notice == nil {
		return nil
	}
	n := *f.notice
	return &n
}

// LastSubmission is the record returned by the most recent successful
// submit, nil when the submitter does not produce one.
func (f *Form) LastSubmission() *contact.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

// Submit validates the current fields and, if they pass, hands them to the
// submitter. Validation errors leave the state untouched and never call
// the submitter. On success the fields are cleared; on failure they are
// kept so the guest can try again.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return ErrSubmitting
	}

	in := f.fields
	if err := contact.Validate(in); err != nil {
		if ve, ok := contact.AsValidationError(err); ok {
			f.fieldErrors = ve.Fields
		}
		f.mu.Unlock()
		return err
	}

	f.stopTimerLocked()
	f.fieldErrors = nil
	f.notice = nil
	f.state = StateSubmitting
	f.mu.Unlock()

	sub, err := f.submitter.Submit(ctx, in)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.log.Warn("contact form submission failed", zap.Error(err))
		f.state = StateFailed
		f.notice = &Notification{Kind: NoticeError, Message: failureMessage(err)}
	} else {
		f.state = StateSucceeded
		f.fields = contact.Input{}
		f.last = sub
		f.notice = &Notification{Kind: NoticeSuccess, Title: SuccessTitle, Message: SuccessMessage}
	}
	f.scheduleResetLocked()

	return err
}

// Dismiss closes the notification early and returns the form to idle.
func (f *Form) Dismiss() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSubmitting {
		return
	}
	f.stopTimerLocked()
	f.notice = nil
	f.state = StateIdle
}

// Close stops the pending reset timer, if any.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopTimerLocked()
}

func (f *Form) scheduleResetLocked() {
	f.stopTimerLocked()
	f.resetGen++
	gen := f.resetGen
	f.resetTimer = time.AfterFunc(f.displayFor, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if gen != f.resetGen {
			return
		}
		if f.state == StateSucceeded || f.state == StateFailed {
			f.state = StateIdle
			f.notice = nil
		}
		f.resetTimer = nil
	})
}

func (f *Form) stopTimerLocked() {
	if f.resetTimer != nil {
		f.resetTimer.Stop()
		f.resetTimer = nil
	}
}

func failureMessage(err error) string {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return GenericFailure
}
