package contactform

import (
	"context"
	"time"

	"bellavista/internal/contact"

	"go.uber.org/zap"
)

// DefaultSimulatedDelay stands in for network latency in simulation mode.
const DefaultSimulatedDelay = 1500 * time.Millisecond

// SimulatedSubmitter does no I/O: it waits, logs the payload and succeeds.
type SimulatedSubmitter struct {
	delay time.Duration
	log   *zap.Logger
}

func NewSimulatedSubmitter(delay time.Duration, log *zap.Logger) *SimulatedSubmitter {
	if log == nil {
		log = zap.NewNop()
	}
	return &SimulatedSubmitter{delay: delay, log: log}
}

func (s *SimulatedSubmitter) Submit(ctx context.Context, in contact.Input) (*contact.Submission, error) {
	t := time.NewTimer(s.delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-t.C:
	}

	s.log.Info("form submitted",
		zap.String("name", in.FirstName+" "+in.LastName),
		zap.String("email", in.Email),
		zap.String("phone", in.Phone),
		zap.String("reservation_date", in.ReservationDate),
		zap.String("party_size", string(in.PartySize)),
		zap.String("special_requests", in.SpecialRequests),
	)
	return nil, nil
}
