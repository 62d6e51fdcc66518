package rest

import (
	"net/http"

	"finance-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

// SignUp регистрирует пользователя
// @Summary Регистрация
// @Description Создает пользователя. Поле password_hash содержит пароль в открытом виде, хранится только bcrypt-хеш.
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body models.Credentials true "Email и пароль"
// @Success 200 {object} models.PublicUser
// @Failure 400 {object} map[string]string "Пустые поля или email уже занят"
// @Router /users [post]
func (h *Handlers) SignUp(c *gin.Context) {
	var creds models.Credentials
	if !bindJSON(c, &creds) {
		return
	}

	user, err := h.authService.SignUp(c.Request.Context(), creds)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Login выдает токен
// @Summary Вход
// @Description Проверяет пароль и возвращает подписанный токен со сроком жизни 24 часа.
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body models.Credentials true "Email и пароль"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 401 {object} map[string]string "Invalid email or password"
// @Router /login [post]
func (h *Handlers) Login(c *gin.Context) {
	var creds models.Credentials
	if !bindJSON(c, &creds) {
		return
	}

	token, err := h.authService.Login(c.Request.Context(), creds)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}
