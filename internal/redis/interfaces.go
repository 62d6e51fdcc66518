package redis

import "context"

// AnalyticsCache хранит рассчитанные представления аналитики по пользователям.
// Реализуется типом Client.
type AnalyticsCache interface {
	// GetView читает представление в dest; false - в кэше нет
	GetView(ctx context.Context, userID int64, view string, dest interface{}) (bool, error)

	// SetView сохраняет представление с TTL кэша
	SetView(ctx context.Context, userID int64, view string, value interface{}) error

	// InvalidateUser удаляет все представления пользователя
	InvalidateUser(ctx context.Context, userID int64) error

	Close() error
}

// Убеждаемся, что Client реализует AnalyticsCache
var _ AnalyticsCache = (*Client)(nil)
