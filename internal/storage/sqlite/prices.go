package sqlite

import (
	"context"

	"finance-tracker/internal/models"
)

func scanProductPrice(row interface{ Scan(...interface{}) error }) (*models.ProductPrice, error) {
	var pp models.ProductPrice
	if err := row.Scan(&pp.ID, &pp.ProductID, &pp.Price, &pp.CreatedAt); err != nil {
		return nil, classifyError(err)
	}
	return &pp, nil
}

func (q *Queries) CreateProductPrice(ctx context.Context, productID, cents int64, createdAt models.Timestamp) (*models.ProductPrice, error) {
	id, err := q.insert(ctx,
		`INSERT INTO product_prices (product_id, price, created_at) VALUES (?, ?, ?)`,
		productID, cents, createdAt,
	)
	if err != nil {
		return nil, err
	}
	return &models.ProductPrice{ID: id, ProductID: productID, Price: cents, CreatedAt: createdAt}, nil
}

func (q *Queries) GetProductPrice(ctx context.Context, userID, id int64) (*models.ProductPrice, error) {
	return scanProductPrice(q.db.QueryRowContext(ctx, `
		SELECT pp.id, pp.product_id, pp.price, pp.created_at
		FROM product_prices pp
		JOIN products p ON p.id = pp.product_id
		WHERE pp.id = ? AND p.user_id = ?`, id, userID))
}

func (q *Queries) ListProductPrices(ctx context.Context, userID int64, productID *int64) ([]models.ProductPrice, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT pp.id, pp.product_id, pp.price, pp.created_at
		FROM product_prices pp
		JOIN products p ON p.id = pp.product_id
		WHERE p.user_id = ? AND (? IS NULL OR pp.product_id = ?)
		ORDER BY pp.created_at ASC, pp.id ASC`, userID, productID, productID)
	if err != nil {
		return nil, classifyError(err)
	}
	defer rows.Close()

	return collect(rows, scanProductPrice)
}
