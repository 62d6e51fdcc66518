package sqlite

import (
	"context"

	"finance-tracker/internal/models"
)

const productColumns = `id, user_id, category_id, name`

func scanProduct(row interface{ Scan(...interface{}) error }) (*models.Product, error) {
	var p models.Product
	if err := row.Scan(&p.ID, &p.UserID, &p.CategoryID, &p.Name); err != nil {
		return nil, classifyError(err)
	}
	return &p, nil
}

func (q *Queries) CreateProduct(ctx context.Context, userID int64, name string, categoryID *int64) (*models.Product, error) {
	id, err := q.insert(ctx,
		`INSERT INTO products (user_id, category_id, name) VALUES (?, ?, ?)`,
		userID, categoryID, name,
	)
	if err != nil {
		return nil, err
	}
	return &models.Product{ID: id, UserID: userID, CategoryID: categoryID, Name: name}, nil
}

func (q *Queries) GetProduct(ctx context.Context, userID, id int64) (*models.Product, error) {
	return scanProduct(q.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ? AND user_id = ?`, id, userID))
}

func (q *Queries) FindProductByName(ctx context.Context, userID int64, name string) (*models.Product, error) {
	return scanProduct(q.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE user_id = ? AND name = ?`, userID, name))
}

func (q *Queries) ListProducts(ctx context.Context, userID int64) ([]models.Product, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, classifyError(err)
	}
	defer rows.Close()

	return collect(rows, scanProduct)
}
