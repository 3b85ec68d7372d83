// Package repository retrieves candidate buyers for matching.
//
// Retrieval is deliberately loose: it returns a superset of plausible buyers
// (verified, with a geographic overlap or no declared geography at all) and
// leaves acceptance to the scorer's strict cutoff. The query predicate is not
// the filter; the score is.
package repository

import (
	"context"

	"dealflow_backend/internal/matching/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// FindCandidates returns verified buyer profiles whose declared geography
// overlaps the subject, plus buyers with no geography declared. Ordered by
// profile creation time so the scorer's tie-break is deterministic.
func (r *Repository) FindCandidates(ctx context.Context, subject domain.SubjectProperty) ([]domain.BuyerCriteria, error) {
	querySQL := `
		SELECT b.id, b.user_id, b.contact_name, b.contact_email, b.contact_phone,
		       b.business_name, b.property_types,
		       b.min_price, b.max_price,
		       b.min_bedrooms, b.max_bedrooms,
		       b.min_bathrooms, b.max_bathrooms,
		       b.states, b.cities, b.zip_codes, b.deal_types,
		       b.has_proof_of_funds, b.is_verified
		FROM buyer_profiles b
		WHERE b.is_verified
		  AND (
			$1 = ANY(b.states)
			OR $2 = ANY(b.cities)
			OR $3 = ANY(b.zip_codes)
			OR (cardinality(b.states) = 0 AND cardinality(b.cities) = 0 AND cardinality(b.zip_codes) = 0)
		  )
		ORDER BY b.created_at`

	rows, err := r.pool.Query(ctx, querySQL, subject.State, subject.City, subject.ZipCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buyers []domain.BuyerCriteria
	for rows.Next() {
		var b domain.BuyerCriteria
		if err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.Name,
			&b.Email,
			&b.Phone,
			&b.BusinessName,
			&b.PropertyTypes,
			&b.MinPrice,
			&b.MaxPrice,
			&b.MinBedrooms,
			&b.MaxBedrooms,
			&b.MinBathrooms,
			&b.MaxBathrooms,
			&b.States,
			&b.Cities,
			&b.ZipCodes,
			&b.DealTypes,
			&b.HasProofOfFunds,
			&b.IsVerified,
		); err != nil {
			return nil, err
		}
		buyers = append(buyers, b)
	}

	return buyers, rows.Err()
}
