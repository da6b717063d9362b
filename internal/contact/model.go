package contact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Input is what the contact/reservation form sends. Everything except the
// three required fields passes through untouched.
type Input struct {
	FirstName       string    `json:"firstName" form:"firstName" validate:"required"`
	LastName        string    `json:"lastName" form:"lastName" validate:"required"`
	Email           string    `json:"email" form:"email" validate:"required,email"`
	Phone           string    `json:"phone,omitempty" form:"phone"`
	ReservationDate string    `json:"reservationDate,omitempty" form:"reservationDate"`
	PartySize       PartySize `json:"partySize,omitempty" form:"partySize"`
	SpecialRequests string    `json:"specialRequests,omitempty" form:"specialRequests"`
}

// Submission is a stored contact request. It is never changed after Create.
type Submission struct {
	ID string `json:"id"`
	Input
	CreatedAt time.Time `json:"createdAt"`
}

func (s *Submission) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// PartySize is kept as the string the guest picked ("4", "10+"). JSON
// clients may also send a bare number.
type PartySize string

func (p *PartySize) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*p = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PartySize(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("partySize must be a number or string: %w", err)
	}
	*p = PartySize(n.String())
	return nil
}
