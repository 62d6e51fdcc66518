package generator

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"finance-tracker/internal/models"
)

var (
	defaultProducts = []string{"Milk", "Bread", "Coffee", "Apples", "Cheese", "Rent", "Electricity", "Cinema ticket", "Bus pass"}
	defaultTags     = []string{"groceries", "weekly", "household", "fun", "work"}
)

// TransactionGenerator собирает случайные, готовые к отправке запросы на создание транзакции
type TransactionGenerator struct {
	mu   sync.Mutex // rand.Rand не потокобезопасен
	rand *rand.Rand
	now  func() time.Time
}

func NewTransactionGenerator() *TransactionGenerator {
	return &TransactionGenerator{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
	}
}

// GenerateTransaction генерирует транзакцию по каталогу пользователя.
// Если каталог пуст, используются имена по умолчанию.
func (g *TransactionGenerator) GenerateTransaction(products []models.Product, tags []models.Tag) *models.TransactionPayload {
	g.mu.Lock()
	defer g.mu.Unlock()

	payload := &models.TransactionPayload{
		TransactionType: models.TransactionExpense,
		Date:            g.randomDate(30),
	}

	if len(products) > 0 && g.rand.Intn(4) > 0 {
		p := products[g.rand.Intn(len(products))]
		payload.ProductID = &p.ID
	} else {
		name := defaultProducts[g.rand.Intn(len(defaultProducts))]
		payload.ProductName = &name
	}

	// Примерно каждая десятая транзакция - доход
	price := g.roundToTwoDecimals(0.5 + g.rand.Float64()*99.5)
	if g.rand.Intn(10) == 0 {
		payload.TransactionType = models.TransactionIncome
		price = g.roundToTwoDecimals(500 + g.rand.Float64()*2500)
	}
	payload.Price = &price

	payload.Tags = g.pickTags(tags)

	return payload
}

// pickTags выбирает до двух разных тегов
func (g *TransactionGenerator) pickTags(tags []models.Tag) []models.Ref {
	count := g.rand.Intn(3)
	refs := make([]models.Ref, 0, count)

	if len(tags) > 0 {
		for _, i := range g.rand.Perm(len(tags)) {
			if len(refs) == count {
				break
			}
			refs = append(refs, models.RefByID(tags[i].ID))
		}
		return refs
	}

	for _, i := range g.rand.Perm(len(defaultTags)) {
		if len(refs) == count {
			break
		}
		refs = append(refs, models.RefByName(defaultTags[i]))
	}
	return refs
}

// randomDate возвращает случайную дату за последние days дней с точностью до минуты
func (g *TransactionGenerator) randomDate(days int) models.Timestamp {
	offset := time.Duration(g.rand.Intn(days*24*60)) * time.Minute
	return models.NewTimestamp(g.now().Add(-offset).Truncate(time.Minute))
}

// roundToTwoDecimals округляет число до 2 знаков после запятой
func (g *TransactionGenerator) roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
