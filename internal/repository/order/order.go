package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"pizzaria/internal/entities"
	"pizzaria/internal/repository"
	"pizzaria/internal/service/orders"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Save(ctx context.Context, order entities.Order) error {
	orderDB, err := FromDomain(&order)
	if err != nil {
		return fmt.Errorf("unexpected order repository save error: %w", err)
	}

	query := `INSERT INTO pedidos (id, customer, delivery_address, items, subtotal, delivery_fee, total,
			payment_method, payment_status, status, created_at, paid_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err = r.querier.Exec(
		ctx,
		query,
		orderDB.ID,
		orderDB.Customer,
		orderDB.DeliveryAddress,
		orderDB.Items,
		orderDB.Subtotal,
		orderDB.DeliveryFee,
		orderDB.Total,
		orderDB.PaymentMethod,
		orderDB.PaymentStatus,
		orderDB.Status,
		orderDB.CreatedAt,
		orderDB.PaidAt,
		orderDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return orders.ErrDuplicateOrder
		}

		return fmt.Errorf("unexpected order repository save error: %w", err)
	}

	return nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Order, error) {
	query := `
	SELECT id, customer, delivery_address, items, subtotal, delivery_fee, total,
		payment_method, payment_status, status, created_at, paid_at, updated_at
	FROM pedidos
	ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderDB OrderDB
		err := rows.Scan(
			&orderDB.ID,
			&orderDB.Customer,
			&orderDB.DeliveryAddress,
			&orderDB.Items,
			&orderDB.Subtotal,
			&orderDB.DeliveryFee,
			&orderDB.Total,
			&orderDB.PaymentMethod,
			&orderDB.PaymentStatus,
			&orderDB.Status,
			&orderDB.CreatedAt,
			&orderDB.PaidAt,
			&orderDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
		}
		orderModels = append(orderModels, orderDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	return ToDomainList(orderModels)
}

func (r *Repository) UpdateStatus(ctx context.Context, orderID string, status entities.KitchenStatus) (*entities.Order, error) {
	builder := qb.
		Update("pedidos").
		Set("status", status.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": orderID}).
		Suffix(`RETURNING id, customer, delivery_address, items, subtotal, delivery_fee, total,
			payment_method, payment_status, status, created_at, paid_at, updated_at`)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderDB OrderDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&orderDB.ID,
			&orderDB.Customer,
			&orderDB.DeliveryAddress,
			&orderDB.Items,
			&orderDB.Subtotal,
			&orderDB.DeliveryFee,
			&orderDB.Total,
			&orderDB.PaymentMethod,
			&orderDB.PaymentStatus,
			&orderDB.Status,
			&orderDB.CreatedAt,
			&orderDB.PaidAt,
			&orderDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orders.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderDB)
}

func (r *Repository) Stats(ctx context.Context, day time.Time) (*entities.OrderStats, error) {
	// Half-open range on the caller's calendar day. A date cast would
	// evaluate in the database session timezone instead.
	dayStart, dayEnd := dayRange(day)

	query := `
	SELECT
		COUNT(*) FILTER (WHERE created_at >= $1 AND created_at < $2),
		COUNT(*) FILTER (WHERE status = 'pending'),
		COUNT(*) FILTER (WHERE status = 'preparing'),
		COALESCE(SUM(total) FILTER (WHERE created_at >= $1 AND created_at < $2), 0)
	FROM pedidos`

	var stats entities.OrderStats
	err := r.querier.QueryRow(ctx, query, dayStart, dayEnd).
		Scan(
			&stats.OrdersToday,
			&stats.Pending,
			&stats.Preparing,
			&stats.RevenueToday,
		)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository stats error: %w", err)
	}

	return &stats, nil
}

func dayRange(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}
