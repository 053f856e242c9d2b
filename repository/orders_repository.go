package repository

import (
	"database/sql"

	"github.com/knixan/b-movies/models"
)

type OrdersRepository struct {
	db *sql.DB
}

func NewOrdersRepository(db *sql.DB) *OrdersRepository {
	return &OrdersRepository{db: db}
}

// CreateOrder inserts an order and its line items in one transaction.
// Unit prices are captured from the movie table at insert time so later
// price changes do not rewrite order history.
func (r *OrdersRepository) CreateOrder(customerName, customerEmail string, items []models.OrderItem) (*models.Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var orderID int
	err = tx.QueryRow(`
		INSERT INTO orders (customer_name, customer_email, status, created_at, modified_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id`,
		customerName, customerEmail, models.OrderStatusPending).Scan(&orderID)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		var priceCents int
		err := tx.QueryRow(`
			SELECT price_cents FROM movie
			WHERE id = $1 AND is_deleted = FALSE`, item.MovieID).Scan(&priceCents)
		if err != nil {
			return nil, err
		}
		_, err = tx.Exec(`
			INSERT INTO order_item (order_id, movie_id, quantity, unit_price_cents)
			VALUES ($1, $2, $3, $4)`,
			orderID, item.MovieID, item.Quantity, priceCents)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.GetOrderByID(orderID)
}

func (r *OrdersRepository) GetOrderByID(id int) (*models.Order, error) {
	var o models.Order
	err := r.db.QueryRow(`
		SELECT id, customer_name, customer_email, status, created_at, modified_at, is_deleted
		FROM orders WHERE id = $1`, id).Scan(
		&o.ID, &o.CustomerName, &o.CustomerEmail, &o.Status, &o.CreatedAt, &o.ModifiedAt, &o.IsDeleted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrdersRepository) loadItems(o *models.Order) error {
	rows, err := r.db.Query(`
		SELECT oi.movie_id, m.title, oi.quantity, oi.unit_price_cents
		FROM order_item oi
		JOIN movie m ON m.id = oi.movie_id
		WHERE oi.order_id = $1
		ORDER BY m.title`, o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	o.TotalCents = 0
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.MovieID, &item.MovieTitle, &item.Quantity, &item.UnitPriceCents); err != nil {
			return err
		}
		o.Items = append(o.Items, item)
		o.TotalCents += item.Quantity * item.UnitPriceCents
	}
	return rows.Err()
}

// ListOrders returns a page of orders, optionally restricted to one status,
// newest first.
func (r *OrdersRepository) ListOrders(status string, page, pageSize int) ([]*models.Order, int, error) {
	offset := (page - 1) * pageSize
	rows, err := r.db.Query(`
		SELECT id, customer_name, customer_email, status, created_at, modified_at
		FROM orders
		WHERE is_deleted = FALSE AND ($1 = '' OR status = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`, status, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.CustomerEmail, &o.Status, &o.CreatedAt, &o.ModifiedAt); err != nil {
			return nil, 0, err
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for _, o := range orders {
		if err := r.loadItems(o); err != nil {
			return nil, 0, err
		}
	}

	var total int
	err = r.db.QueryRow(`
		SELECT COUNT(*) FROM orders
		WHERE is_deleted = FALSE AND ($1 = '' OR status = $1)`, status).Scan(&total)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrdersRepository) UpdateOrderStatus(id int, status string) error {
	_, err := r.db.Exec(`
		UPDATE orders SET status = $1, modified_at = NOW()
		WHERE id = $2 AND is_deleted = FALSE`, status, id)
	return err
}

func (r *OrdersRepository) UpdateOrderDeleted(id int, isDeleted bool) error {
	_, err := r.db.Exec(`
		UPDATE orders SET is_deleted = $1, modified_at = NOW()
		WHERE id = $2`, isDeleted, id)
	return err
}
