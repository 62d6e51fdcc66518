package sqlite

import (
	"context"

	"finance-tracker/internal/models"
)

func scanTag(row interface{ Scan(...interface{}) error }) (*models.Tag, error) {
	var t models.Tag
	if err := row.Scan(&t.ID, &t.Name, &t.UserID); err != nil {
		return nil, classifyError(err)
	}
	return &t, nil
}

func (q *Queries) CreateTag(ctx context.Context, userID int64, name string) (*models.Tag, error) {
	id, err := q.insert(ctx, `INSERT INTO tags (user_id, name) VALUES (?, ?)`, userID, name)
	if err != nil {
		return nil, err
	}
	return &models.Tag{ID: id, Name: name, UserID: userID}, nil
}

func (q *Queries) GetTag(ctx context.Context, userID, id int64) (*models.Tag, error) {
	return scanTag(q.db.QueryRowContext(ctx,
		`SELECT id, name, user_id FROM tags WHERE id = ? AND user_id = ?`, id, userID))
}

func (q *Queries) FindTagByName(ctx context.Context, userID int64, name string) (*models.Tag, error) {
	return scanTag(q.db.QueryRowContext(ctx,
		`SELECT id, name, user_id FROM tags WHERE user_id = ? AND name = ?`, userID, name))
}

func (q *Queries) ListTags(ctx context.Context, userID int64) ([]models.Tag, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, name, user_id FROM tags WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, classifyError(err)
	}
	defer rows.Close()

	return collect(rows, scanTag)
}
