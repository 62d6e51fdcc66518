package sqlite

import (
	"context"

	"finance-tracker/internal/storage"
)

// SpendingByDay суммирует цены транзакций по календарной дате
func (q *Queries) SpendingByDay(ctx context.Context, userID int64) ([]storage.DailyTotal, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT DATE(t.date) AS day, COALESCE(SUM(pp.price), 0)
		FROM transactions t
		JOIN product_prices pp ON pp.id = t.product_price_id
		WHERE t.user_id = ?
		GROUP BY day
		ORDER BY day ASC`, userID)
	if err != nil {
		return nil, classifyError(err)
	}
	defer rows.Close()

	totals := make([]storage.DailyTotal, 0)
	for rows.Next() {
		var d storage.DailyTotal
		if err := rows.Scan(&d.Date, &d.TotalCents); err != nil {
			return nil, classifyError(err)
		}
		totals = append(totals, d)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err)
	}
	return totals, nil
}

// SpendingByCategory суммирует цены транзакций по категориям; товары без категории не учитываются
func (q *Queries) SpendingByCategory(ctx context.Context, userID int64) ([]storage.CategoryTotal, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT c.name, COALESCE(SUM(pp.price), 0)
		FROM transactions t
		JOIN products p ON p.id = t.product_id
		JOIN categories c ON c.id = p.category_id
		JOIN product_prices pp ON pp.id = t.product_price_id
		WHERE t.user_id = ?
		GROUP BY c.name
		ORDER BY c.name ASC`, userID)
	if err != nil {
		return nil, classifyError(err)
	}
	defer rows.Close()

	totals := make([]storage.CategoryTotal, 0)
	for rows.Next() {
		var c storage.CategoryTotal
		if err := rows.Scan(&c.CategoryName, &c.TotalCents); err != nil {
			return nil, classifyError(err)
		}
		totals = append(totals, c)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err)
	}
	return totals, nil
}
