package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SpendingTimeSeries возвращает расходы по дням
// @Summary Расходы по дням
// @Tags analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.SpendingTimeSeriesEntry
// @Failure 401 "Unauthorized"
// @Router /spending-time-series [get]
func (h *Handlers) SpendingTimeSeries(c *gin.Context) {
	series, err := h.analyticsService.SpendingTimeSeries(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// CategorySpending возвращает расходы по категориям
// @Summary Расходы по категориям
// @Description Товары без категории не учитываются.
// @Tags analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.CategorySpending
// @Failure 401 "Unauthorized"
// @Router /category-spending [get]
func (h *Handlers) CategorySpending(c *gin.Context) {
	spending, err := h.analyticsService.CategorySpending(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, spending)
}

// ProductPriceData возвращает историю цены товара
// @Summary История цены
// @Tags analytics
// @Security BearerAuth
// @Produce json
// @Param product_id query int true "ID товара"
// @Success 200 {array} models.ProductPriceData
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 401 "Unauthorized"
// @Router /product-price-data [get]
func (h *Handlers) ProductPriceData(c *gin.Context) {
	productID, ok := queryInt64(c, "product_id")
	if !ok {
		return
	}
	if productID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return
	}

	points, err := h.analyticsService.ProductPriceData(c.Request.Context(), currentUser(c), *productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}
