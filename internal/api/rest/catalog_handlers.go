package rest

import (
	"net/http"

	"finance-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateCategory создает категорию
// @Summary Создать категорию
// @Description Родитель задается через parent_category_id или parent_category_name (находится или создается).
// @Tags categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param category body models.CategoryPayload true "Категория"
// @Success 200 {object} models.CreateCategoryResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 401 "Unauthorized"
// @Router /categories [post]
func (h *Handlers) CreateCategory(c *gin.Context) {
	var payload models.CategoryPayload
	if !bindJSON(c, &payload) {
		return
	}

	resp, err := h.catalogService.CreateCategory(c.Request.Context(), currentUser(c), &payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListCategories возвращает категории пользователя
// @Summary Список категорий
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Category
// @Failure 401 "Unauthorized"
// @Router /categories [get]
func (h *Handlers) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateProduct создает товар
// @Summary Создать товар
// @Description Категория задается через category_id или category_name (находится или создается).
// @Tags products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param product body models.ProductPayload true "Товар"
// @Success 200 {object} models.CreateProductResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 401 "Unauthorized"
// @Router /products [post]
func (h *Handlers) CreateProduct(c *gin.Context) {
	var payload models.ProductPayload
	if !bindJSON(c, &payload) {
		return
	}

	resp, err := h.catalogService.CreateProduct(c.Request.Context(), currentUser(c), &payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListProducts возвращает товары пользователя
// @Summary Список товаров
// @Tags products
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.ProductDto
// @Failure 401 "Unauthorized"
// @Router /products [get]
func (h *Handlers) ListProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}
