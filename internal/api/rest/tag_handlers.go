package rest

import (
	"net/http"

	"finance-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateTag создает тег
// @Summary Создать тег
// @Tags tags
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param tag body models.TagPayload true "Тег"
// @Success 200 {object} models.Tag
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 401 "Unauthorized"
// @Router /tags [post]
func (h *Handlers) CreateTag(c *gin.Context) {
	var payload models.TagPayload
	if !bindJSON(c, &payload) {
		return
	}

	tag, err := h.tagService.CreateTag(c.Request.Context(), currentUser(c), &payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

// ListTags возвращает теги пользователя
// @Summary Список тегов
// @Tags tags
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Tag
// @Failure 401 "Unauthorized"
// @Router /tags [get]
func (h *Handlers) ListTags(c *gin.Context) {
	tags, err := h.tagService.ListTags(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}
