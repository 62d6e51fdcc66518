package logger

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventUserRegistered     EventType = "user_registered"
	EventCategoryCreated    EventType = "category_created"
	EventProductCreated     EventType = "product_created"
	EventPriceRecorded      EventType = "price_recorded"
	EventTagCreated         EventType = "tag_created"
	EventTransactionCreated EventType = "transaction_created"
	EventCacheInvalidated   EventType = "cache_invalidated"
	EventPublished          EventType = "event_published"
	EventConsumed           EventType = "event_consumed"
	EventAnalyticsWarmed    EventType = "analytics_warmed"
)

// Event - запись журнала доменных событий
type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Service   string                 `json:"service"`
	UserID    int64                  `json:"user_id"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
	Component string                 `json:"component"` // sqlite, redis, kafka, api
}

// EventLogger хранит последние maxSize событий всех пользователей
type EventLogger struct {
	events  []Event
	mu      sync.RWMutex
	maxSize int
}

var globalLogger *EventLogger

func init() {
	globalLogger = NewEventLogger(1000) // Храним последние 1000 событий
}

func NewEventLogger(maxSize int) *EventLogger {
	return &EventLogger{
		events:  make([]Event, 0, maxSize),
		maxSize: maxSize,
	}
}

func LogEvent(eventType EventType, service, component string, userID int64, data map[string]interface{}) {
	globalLogger.LogEvent(eventType, service, component, userID, data)
}

func (el *EventLogger) LogEvent(eventType EventType, service, component string, userID int64, data map[string]interface{}) {
	el.mu.Lock()
	defer el.mu.Unlock()

	el.events = append(el.events, Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Service:   service,
		Component: component,
		UserID:    userID,
		Timestamp: time.Now(),
		Data:      data,
	})

	if len(el.events) > el.maxSize {
		el.events = el.events[len(el.events)-el.maxSize:]
	}
}

func GetEvents(userID int64, limit int) []Event {
	return globalLogger.GetEvents(userID, limit)
}

// GetEvents возвращает последние limit событий пользователя в хронологическом порядке.
// limit <= 0 - все события пользователя.
func (el *EventLogger) GetEvents(userID int64, limit int) []Event {
	el.mu.RLock()
	defer el.mu.RUnlock()

	result := make([]Event, 0)
	for i := len(el.events) - 1; i >= 0; i-- {
		if limit > 0 && len(result) == limit {
			break
		}
		if el.events[i].UserID == userID {
			result = append(result, el.events[i])
		}
	}

	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result
}

func GetStats(userID int64) map[string]interface{} {
	return globalLogger.GetStats(userID)
}

func (el *EventLogger) GetStats(userID int64) map[string]interface{} {
	el.mu.RLock()
	defer el.mu.RUnlock()

	componentStats := make(map[string]int)
	serviceStats := make(map[string]int)
	typeStats := make(map[string]int)
	total := 0

	for _, event := range el.events {
		if event.UserID != userID {
			continue
		}
		total++
		componentStats[event.Component]++
		serviceStats[event.Service]++
		typeStats[string(event.Type)]++
	}

	return map[string]interface{}{
		"total_events": total,
		"components":   componentStats,
		"services":     serviceStats,
		"event_types":  typeStats,
	}
}

func (e Event) MarshalJSON() ([]byte, error) {
	type Alias Event
	return json.Marshal(&struct {
		Timestamp string `json:"timestamp"`
		*Alias
	}{
		Timestamp: e.Timestamp.Format(time.RFC3339),
		Alias:     (*Alias)(&e),
	})
}
