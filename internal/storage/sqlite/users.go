package sqlite

import (
	"context"

	"finance-tracker/internal/models"
)

func (q *Queries) CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error) {
	id, err := q.insert(ctx, `INSERT INTO users (email, password_hash) VALUES (?, ?)`, email, passwordHash)
	if err != nil {
		return nil, err
	}
	return &models.User{ID: id, Email: email, PasswordHash: passwordHash}, nil
}

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := q.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash FROM users WHERE email = ?`, email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash)
	if err != nil {
		return nil, classifyError(err)
	}
	return &u, nil
}
