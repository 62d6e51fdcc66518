package sqlite

import (
	"context"

	"finance-tracker/internal/models"
)

const transactionColumns = `id, user_id, product_id, product_price_id, transaction_type, description, date`

func scanTransaction(row interface{ Scan(...interface{}) error }) (*models.Transaction, error) {
	var t models.Transaction
	if err := row.Scan(&t.ID, &t.UserID, &t.ProductID, &t.ProductPriceID, &t.TransactionType, &t.Description, &t.Date); err != nil {
		return nil, classifyError(err)
	}
	return &t, nil
}

func (q *Queries) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	id, err := q.insert(ctx, `
		INSERT INTO transactions (user_id, product_id, product_price_id, transaction_type, description, date)
		VALUES (?, ?, ?, ?, ?, ?)`,
		tx.UserID, tx.ProductID, tx.ProductPriceID, tx.TransactionType, tx.Description, tx.Date,
	)
	if err != nil {
		return nil, err
	}
	created := *tx
	created.ID = id
	return &created, nil
}

func (q *Queries) GetTransaction(ctx context.Context, userID, id int64) (*models.Transaction, error) {
	return scanTransaction(q.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = ? AND user_id = ?`, id, userID))
}

func (q *Queries) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE user_id = ? ORDER BY date ASC, id ASC`, userID)
	if err != nil {
		return nil, classifyError(err)
	}
	defer rows.Close()

	return collect(rows, scanTransaction)
}

func (q *Queries) AttachTag(ctx context.Context, transactionID, tagID int64) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO transaction_tags (transaction_id, tag_id) VALUES (?, ?)`, transactionID, tagID)
	return classifyError(err)
}

func (q *Queries) ListTransactionTags(ctx context.Context, transactionID int64) ([]models.Tag, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT t.id, t.name, t.user_id
		FROM transaction_tags tt
		JOIN tags t ON t.id = tt.tag_id
		WHERE tt.transaction_id = ?
		ORDER BY t.id`, transactionID)
	if err != nil {
		return nil, classifyError(err)
	}
	defer rows.Close()

	return collect(rows, scanTag)
}

func (q *Queries) ListTransactionTagLinks(ctx context.Context, userID int64) ([]models.TransactionTag, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT tt.transaction_id, tt.tag_id
		FROM transaction_tags tt
		JOIN transactions tr ON tr.id = tt.transaction_id
		WHERE tr.user_id = ?
		ORDER BY tt.transaction_id, tt.tag_id`, userID)
	if err != nil {
		return nil, classifyError(err)
	}
	defer rows.Close()

	links := make([]models.TransactionTag, 0)
	for rows.Next() {
		var l models.TransactionTag
		if err := rows.Scan(&l.TransactionID, &l.TagID); err != nil {
			return nil, classifyError(err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err)
	}
	return links, nil
}
