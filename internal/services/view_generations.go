package services

import "sync"

// viewGenerations считает сбросы кэша аналитики по пользователям внутри процесса.
// Чтение сохраняет загруженное представление, только если с начала загрузки сбросов не было.
type viewGenerations struct {
	mu  sync.Mutex
	gen map[int64]uint64
}

var analyticsGenerations = newViewGenerations()

func newViewGenerations() *viewGenerations {
	return &viewGenerations{gen: make(map[int64]uint64)}
}

func (g *viewGenerations) current(userID int64) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gen[userID]
}

// bump вызывается до удаления ключей: запись, успевшая раньше, будет удалена,
// а запись после bump не пройдет проверку в storeIf
func (g *viewGenerations) bump(userID int64) {
	g.mu.Lock()
	g.gen[userID]++
	g.mu.Unlock()
}

// storeIf выполняет store под блокировкой, если поколение все еще seen
func (g *viewGenerations) storeIf(userID int64, seen uint64, store func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.gen[userID] != seen {
		return false
	}
	store()
	return true
}
