// Package repository provides comparable-sales lookups backed by Postgres.
package repository

import (
	"context"
	"strings"
	"time"

	"dealflow_backend/internal/analysis/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CompQuery narrows the comparable-sales search to the subject's locality.
type CompQuery struct {
	Address string
	City    string
	State   string
	ZipCode string
	// MaxAgeMonths bounds how old a sale may be. Zero means the default window.
	MaxAgeMonths int
	// Limit caps the number of comps returned. Zero means the default.
	Limit int
}

const (
	defaultMaxAgeMonths = 12
	defaultCompLimit    = 10
)

// CacheKey returns a stable cache key for this query's locality window.
func (q CompQuery) CacheKey() string {
	parts := []string{
		strings.ToLower(strings.TrimSpace(q.City)),
		strings.ToUpper(strings.TrimSpace(q.State)),
		strings.TrimSpace(q.ZipCode),
	}
	if parts[0] == "" && parts[1] == "" && parts[2] == "" {
		parts = append(parts, strings.ToLower(strings.TrimSpace(q.Address)))
	}
	return "comps:" + strings.Join(parts, ":")
}

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// localityToken extracts the locality part of a full street address for the
// fallback comp search. "123 Main St, Springfield, IL" yields
// "Springfield, IL"; the street number and name would never match a different
// property's address. Addresses without a comma are used whole.
func localityToken(address string) string {
	if i := strings.Index(address, ","); i >= 0 {
		if tail := strings.TrimSpace(address[i+1:]); tail != "" {
			return tail
		}
	}
	return strings.TrimSpace(address)
}

// FindComparables returns recent sales near the subject, most recent first.
// Matching prefers zip code, then city+state, then a loose address locality
// match when nothing else is available.
func (r *Repository) FindComparables(ctx context.Context, q CompQuery) ([]domain.ComparableSale, error) {
	maxAge := q.MaxAgeMonths
	if maxAge <= 0 {
		maxAge = defaultMaxAgeMonths
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultCompLimit
	}
	cutoff := time.Now().AddDate(0, -maxAge, 0)

	querySQL := `
		SELECT address, sale_price, sale_date, bedrooms, bathrooms,
		       square_feet, distance_miles, price_per_sqft
		FROM comparable_sales
		WHERE sale_date >= $1
		  AND (
			($2 <> '' AND zip_code = $2)
			OR ($3 <> '' AND lower(city) = lower($3) AND upper(state) = upper($4))
			OR ($2 = '' AND $3 = '' AND $5 <> '' AND lower(address) LIKE '%' || lower($5) || '%')
		  )
		ORDER BY sale_date DESC
		LIMIT $6`

	rows, err := r.pool.Query(ctx, querySQL, cutoff, q.ZipCode, q.City, q.State, localityToken(q.Address), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comps := make([]domain.ComparableSale, 0, limit)
	for rows.Next() {
		var comp domain.ComparableSale
		if err := rows.Scan(
			&comp.Address,
			&comp.SalePrice,
			&comp.SaleDate,
			&comp.Bedrooms,
			&comp.Bathrooms,
			&comp.SquareFeet,
			&comp.DistanceMiles,
			&comp.PricePerSquareFoot,
		); err != nil {
			return nil, err
		}
		comps = append(comps, comp)
	}

	return comps, rows.Err()
}
