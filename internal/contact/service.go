package contact

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Notifier tells staff about a new request.
type Notifier interface {
	NotifySubmission(ctx context.Context, sub *Submission) error
}

// Archiver keeps an off-box copy of each request.
type Archiver interface {
	ArchiveSubmission(ctx context.Context, sub *Submission) error
}

type Service struct {
	store    Store
	notifier Notifier
	archiver Archiver
	log      *zap.Logger
}

// NewService wires the store with optional side effects; notifier and
// archiver may be nil.
func NewService(store Store, notifier Notifier, archiver Archiver, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:    store,
		notifier: notifier,
		archiver: archiver,
		log:      log,
	}
}

// --------------------------------------------------
// Submit (validate → store → notify → archive)
// --------------------------------------------------
func (s *Service) Submit(ctx context.Context, in Input) (*Submission, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	sub, err := s.store.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("store contact submission: %w", err)
	}

	s.log.Info("contact submission stored",
		zap.String("id", sub.ID),
		zap.String("email", sub.Email),
		zap.String("reservation_date", sub.ReservationDate),
		zap.String("party_size", string(sub.PartySize)),
	)

	// the guest already has a stored request; side effects only log
	if s.notifier != nil {
		if err := s.notifier.NotifySubmission(ctx, sub); err != nil {
			s.log.Warn("notify staff failed", zap.String("id", sub.ID), zap.Error(err))
		}
	}
	if s.archiver != nil {
		if err := s.archiver.ArchiveSubmission(ctx, sub); err != nil {
			s.log.Warn("archive submission failed", zap.String("id", sub.ID), zap.Error(err))
		}
	}

	return sub, nil
}
