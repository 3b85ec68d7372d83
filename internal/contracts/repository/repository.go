// Package repository persists assignment contracts.
package repository

import (
	"context"
	"errors"
	"fmt"

	"dealflow_backend/internal/contracts/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when no contract row matches.
var ErrNotFound = errors.New("contract not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const contractColumns = `id, user_id, property_address, seller_name, seller_email,
	buyer_name, buyer_email, agent_name, deal_type,
	purchase_price, sale_price, earnest_money, inspection_period_days,
	closing_date, has_liens, lien_amount, balloon_payment,
	status, document, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, c *domain.Contract) error {
	query := `
		INSERT INTO contracts (
			id, user_id, property_address, seller_name, seller_email,
			buyer_name, buyer_email, agent_name, deal_type,
			purchase_price, sale_price, earnest_money, inspection_period_days,
			closing_date, has_liens, lien_amount, balloon_payment, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		c.ID, c.UserID, c.PropertyAddress, c.SellerName, c.SellerEmail,
		c.BuyerName, c.BuyerEmail, c.AgentName, c.DealType,
		c.PurchasePrice, c.SalePrice, c.EarnestMoney, c.InspectionPeriodDays,
		c.ClosingDate, c.HasLiens, c.LienAmount, c.BalloonPayment, c.Status,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contract, error) {
	query := fmt.Sprintf(`SELECT %s FROM contracts WHERE id = $1`, contractColumns)

	c, err := scanContract(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// SetDocument stores the rendered document and moves the contract to the
// given status.
func (r *Repository) SetDocument(ctx context.Context, id uuid.UUID, document string, status domain.Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contracts SET document = $2, status = $3, updated_at = NOW() WHERE id = $1`,
		id, document, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStatus moves the contract to the given status without touching the document.
func (r *Repository) SetStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contracts SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanContract(row pgx.Row) (*domain.Contract, error) {
	var c domain.Contract
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.PropertyAddress,
		&c.SellerName,
		&c.SellerEmail,
		&c.BuyerName,
		&c.BuyerEmail,
		&c.AgentName,
		&c.DealType,
		&c.PurchasePrice,
		&c.SalePrice,
		&c.EarnestMoney,
		&c.InspectionPeriodDays,
		&c.ClosingDate,
		&c.HasLiens,
		&c.LienAmount,
		&c.BalloonPayment,
		&c.Status,
		&c.Document,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
