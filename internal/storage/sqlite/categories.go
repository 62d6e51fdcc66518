package sqlite

import (
	"context"
	"database/sql"

	"finance-tracker/internal/models"
)

const categoryColumns = `id, parent_category_id, name, user_id`

func scanCategory(row interface{ Scan(...interface{}) error }) (*models.Category, error) {
	var c models.Category
	if err := row.Scan(&c.ID, &c.ParentCategoryID, &c.Name, &c.UserID); err != nil {
		return nil, classifyError(err)
	}
	return &c, nil
}

func (q *Queries) CreateCategory(ctx context.Context, userID int64, name string, parentID *int64) (*models.Category, error) {
	id, err := q.insert(ctx,
		`INSERT INTO categories (user_id, parent_category_id, name) VALUES (?, ?, ?)`,
		userID, parentID, name,
	)
	if err != nil {
		return nil, err
	}
	return &models.Category{ID: id, ParentCategoryID: parentID, Name: name, UserID: userID}, nil
}

func (q *Queries) GetCategory(ctx context.Context, userID, id int64) (*models.Category, error) {
	return scanCategory(q.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = ? AND user_id = ?`, id, userID))
}

func (q *Queries) FindCategoryByName(ctx context.Context, userID int64, name string) (*models.Category, error) {
	return scanCategory(q.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE user_id = ? AND name = ?`, userID, name))
}

func (q *Queries) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, classifyError(err)
	}
	defer rows.Close()

	return collect(rows, scanCategory)
}

// collect сканирует все строки выборки
func collect[T any](rows *sql.Rows, scan func(interface{ Scan(...interface{}) error }) (*T, error)) ([]T, error) {
	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err)
	}
	return items, nil
}
