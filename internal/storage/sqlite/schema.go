package sqlite

// initSchema инициализирует схему БД
func (s *SQLiteStorage) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		parent_category_id INTEGER REFERENCES categories(id),
		name TEXT NOT NULL,
		UNIQUE (user_id, name)
	);

	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		category_id INTEGER REFERENCES categories(id),
		name TEXT NOT NULL,
		UNIQUE (user_id, name)
	);

	CREATE TABLE IF NOT EXISTS product_prices (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		product_id INTEGER NOT NULL REFERENCES products(id),
		price INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tags (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		name TEXT NOT NULL,
		UNIQUE (user_id, name)
	);

	CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		product_id INTEGER NOT NULL REFERENCES products(id),
		product_price_id INTEGER NOT NULL REFERENCES product_prices(id),
		transaction_type TEXT NOT NULL CHECK (transaction_type IN ('income', 'expense')),
		description TEXT,
		date DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS transaction_tags (
		transaction_id INTEGER NOT NULL REFERENCES transactions(id),
		tag_id INTEGER NOT NULL REFERENCES tags(id),
		PRIMARY KEY (transaction_id, tag_id)
	);

	CREATE INDEX IF NOT EXISTS idx_categories_user ON categories(user_id);
	CREATE INDEX IF NOT EXISTS idx_products_user ON products(user_id);
	CREATE INDEX IF NOT EXISTS idx_product_prices_product ON product_prices(product_id, created_at);
	CREATE INDEX IF NOT EXISTS idx_tags_user ON tags(user_id);
	CREATE INDEX IF NOT EXISTS idx_transactions_user ON transactions(user_id, date);
	CREATE INDEX IF NOT EXISTS idx_transaction_tags_tag ON transaction_tags(tag_id);
	`

	_, err := s.DB.Exec(query)
	return err
}
