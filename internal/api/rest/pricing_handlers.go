package rest

import (
	"net/http"

	"finance-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateProductPrice записывает цену товара
// @Summary Записать цену
// @Description Цена в долларах хранится в центах. created_at задает момент наблюдения цены.
// @Tags product_prices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param price body models.ProductPricePayload true "Цена"
// @Success 200 {object} models.CreateProductPriceResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 401 "Unauthorized"
// @Router /product_prices [post]
func (h *Handlers) CreateProductPrice(c *gin.Context) {
	var payload models.ProductPricePayload
	if !bindJSON(c, &payload) {
		return
	}

	resp, err := h.pricingService.CreateProductPrice(c.Request.Context(), currentUser(c), &payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListProductPrices возвращает историю цен
// @Summary Список цен
// @Tags product_prices
// @Security BearerAuth
// @Produce json
// @Param product_id query int false "Только цены этого товара"
// @Success 200 {array} models.ProductPriceDto
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 401 "Unauthorized"
// @Router /product_prices [get]
func (h *Handlers) ListProductPrices(c *gin.Context) {
	productID, ok := queryInt64(c, "product_id")
	if !ok {
		return
	}

	prices, err := h.pricingService.ListProductPrices(c.Request.Context(), currentUser(c), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prices)
}
