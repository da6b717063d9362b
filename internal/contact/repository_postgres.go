package contact

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// --------------------------------------------------
// CREATE (APPEND ONLY)
// --------------------------------------------------
func (s *PostgresStore) Create(ctx context.Context, in Input) (*Submission, error) {
	sub := &Submission{
		ID:    uuid.New().String(),
		Input: in,
	}

	err := s.db.QueryRow(ctx, `
		INSERT INTO contact_submissions (
			id,
			first_name,
			last_name,
			email,
			phone,
			reservation_date,
			party_size,
			special_requests
		)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''))
		RETURNING created_at
	`,
		sub.ID,
		in.FirstName,
		in.LastName,
		in.Email,
		in.Phone,
		in.ReservationDate,
		string(in.PartySize),
		in.SpecialRequests,
	).Scan(&sub.CreatedAt)
	if err != nil {
		return nil, err
	}

	sub.CreatedAt = sub.CreatedAt.UTC()
	return sub, nil
}
