// Package repository persists buyer profiles.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dealflow_backend/internal/buyers/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound is returned when no profile row matches.
	ErrNotFound = errors.New("buyer profile not found")
	// ErrDuplicate is returned when the user already has a profile.
	ErrDuplicate = errors.New("buyer profile already exists")
)

const uniqueViolation = "23505"

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const profileColumns = `id, user_id, contact_name, contact_email, contact_phone, business_name,
	property_types, min_price, max_price, min_bedrooms, max_bedrooms,
	min_bathrooms, max_bathrooms, states, cities, zip_codes, deal_types,
	has_proof_of_funds, is_verified, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, p *domain.Profile) error {
	query := `
		INSERT INTO buyer_profiles (
			id, user_id, contact_name, contact_email, contact_phone, business_name,
			property_types, min_price, max_price, min_bedrooms, max_bedrooms,
			min_bathrooms, max_bathrooms, states, cities, zip_codes, deal_types,
			has_proof_of_funds, is_verified
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		p.ID, p.UserID, p.Name, p.Email, p.Phone, p.BusinessName,
		p.PropertyTypes, p.MinPrice, p.MaxPrice, p.MinBedrooms, p.MaxBedrooms,
		p.MinBathrooms, p.MaxBathrooms, p.States, p.Cities, p.ZipCodes, p.DealTypes,
		p.HasProofOfFunds, p.IsVerified,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM buyer_profiles WHERE id = $1`, profileColumns)
	return r.one(ctx, query, id)
}

func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM buyer_profiles WHERE user_id = $1`, profileColumns)
	return r.one(ctx, query, userID)
}

func (r *Repository) one(ctx context.Context, query string, arg any) (*domain.Profile, error) {
	p, err := scanProfile(r.pool.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns a page of profiles matching the filter plus the unpaged total.
func (r *Repository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Profile, int64, error) {
	where, args := buildFilter(filter)

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM buyer_profiles`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM buyer_profiles%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		profileColumns, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *p)
	}
	return out, total, rows.Err()
}

func buildFilter(filter domain.ListFilter) (string, []any) {
	var clauses []string
	var args []any

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(contact_name ILIKE $%d OR business_name ILIKE $%d OR contact_email ILIKE $%d)", n, n, n))
	}
	if filter.PropertyType != "" {
		args = append(args, filter.PropertyType)
		clauses = append(clauses, fmt.Sprintf("$%d = ANY(property_types)", len(args)))
	}
	if filter.State != "" {
		args = append(args, filter.State)
		clauses = append(clauses, fmt.Sprintf("$%d = ANY(states)", len(args)))
	}
	if filter.VerifiedOnly {
		clauses = append(clauses, "is_verified")
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Email,
		&p.Phone,
		&p.BusinessName,
		&p.PropertyTypes,
		&p.MinPrice,
		&p.MaxPrice,
		&p.MinBedrooms,
		&p.MaxBedrooms,
		&p.MinBathrooms,
		&p.MaxBathrooms,
		&p.States,
		&p.Cities,
		&p.ZipCodes,
		&p.DealTypes,
		&p.HasProofOfFunds,
		&p.IsVerified,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
