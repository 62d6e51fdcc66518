package rest

import (
	"net/http"

	"finance-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateTransaction обрабатывает POST запрос на создание транзакции
// @Summary Создать транзакцию
// @Description Товар, цена и теги находятся или создаются в одной транзакции БД. Любая ошибка откатывает все изменения.
// @Tags transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param transaction body models.TransactionPayload true "Транзакция"
// @Success 200 {object} models.CreateTransactionResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 401 "Unauthorized"
// @Failure 503 {object} map[string]string "Failed to fetch connection from pool"
// @Router /transactions [post]
func (h *Handlers) CreateTransaction(c *gin.Context) {
	var payload models.TransactionPayload
	if !bindJSON(c, &payload) {
		return
	}

	resp, err := h.transactionService.CreateTransaction(c.Request.Context(), currentUser(c), &payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListTransactions возвращает все транзакции пользователя
// @Summary Список транзакций
// @Description Каждая транзакция содержит список id тегов.
// @Tags transactions
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.TransactionDto
// @Failure 401 "Unauthorized"
// @Router /transactions [get]
func (h *Handlers) ListTransactions(c *gin.Context) {
	transactions, err := h.transactionService.ListTransactions(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// GenerateTransaction генерирует случайную транзакцию
// @Summary Сгенерировать транзакцию
// @Description Возвращает случайный запрос на создание транзакции по каталогу пользователя. Ничего не сохраняет.
// @Tags transactions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.TransactionPayload
// @Failure 401 "Unauthorized"
// @Router /transactions/generate [get]
func (h *Handlers) GenerateTransaction(c *gin.Context) {
	payload, err := h.transactionService.GenerateTransaction(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}
