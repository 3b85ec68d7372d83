// Package repository persists property listings.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dealflow_backend/internal/properties/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when no property row matches.
var ErrNotFound = errors.New("property not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const propertyColumns = `id, user_id, address, city, state, zip_code, property_type,
	bedrooms, bathrooms, square_feet, year_built, list_price,
	description, status, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, p *domain.Property) error {
	query := `
		INSERT INTO properties (
			id, user_id, address, city, state, zip_code, property_type,
			bedrooms, bathrooms, square_feet, year_built, list_price,
			description, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		p.ID, p.UserID, p.Address, p.City, p.State, p.ZipCode, p.PropertyType,
		p.Bedrooms, p.Bathrooms, p.SquareFeet, p.YearBuilt, p.ListPrice,
		p.Description, p.Status,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	query := fmt.Sprintf(`SELECT %s FROM properties WHERE id = $1`, propertyColumns)

	p, err := scanProperty(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns a page of properties matching the filter plus the unpaged total.
func (r *Repository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Property, int64, error) {
	where, args := buildFilter(filter)

	var total int64
	countQuery := `SELECT COUNT(*) FROM properties` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM properties%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		propertyColumns, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *p)
	}
	return out, total, rows.Err()
}

func (r *Repository) Update(ctx context.Context, p *domain.Property) error {
	query := `
		UPDATE properties SET
			address = $2, city = $3, state = $4, zip_code = $5, property_type = $6,
			bedrooms = $7, bathrooms = $8, square_feet = $9, year_built = $10,
			list_price = $11, description = $12, status = $13, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.pool.QueryRow(ctx, query,
		p.ID, p.Address, p.City, p.State, p.ZipCode, p.PropertyType,
		p.Bedrooms, p.Bathrooms, p.SquareFeet, p.YearBuilt,
		p.ListPrice, p.Description, p.Status,
	).Scan(&p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func buildFilter(filter domain.ListFilter) (string, []any) {
	var clauses []string
	var args []any

	add := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	add("property_type", filter.PropertyType)
	add("state", filter.State)
	add("city", filter.City)
	add("status", filter.Status)

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var p domain.Property
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Address,
		&p.City,
		&p.State,
		&p.ZipCode,
		&p.PropertyType,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.SquareFeet,
		&p.YearBuilt,
		&p.ListPrice,
		&p.Description,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
