package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sellora/internal/middleware"
	"sellora/internal/models"
	"sellora/internal/services"
)

type AuthHandler struct {
	accounts services.AccountService
	tokenTTL int // секунды, для cookie
}

func NewAuthHandler(accounts services.AccountService, tokens services.TokenService) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		tokenTTL: int(tokens.TTL().Seconds()),
	}
}

// @Summary      Вход в систему
// @Description  Аутентифицирует пользователя и выдаёт токен в HTTP-only cookie
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Данные для входа"
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.accounts.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	// токен едет в браузер cookie со временем жизни токена
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, token, h.tokenTTL, "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}

// @Summary      Регистрация
// @Description  Создаёт неактивный аккаунт и отправляет код подтверждения на email
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        register  body      models.RegisterRequest  true  "Данные регистрации"
// @Success      200       {object}  map[string]string
// @Failure      400       {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accounts.Register(req.Email, req.FirstName, req.LastName, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registration successful. Check your email for verification code."})
}

// @Summary      Подтверждение email
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        verification  body      models.VerifyEmailRequest  true  "Email и код"
// @Success      200           {object}  map[string]string
// @Failure      400           {object}  map[string]string
// @Router       /api/auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req models.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accounts.VerifyEmail(req.Email, req.Code); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email verification successful. You can now log in."})
}

// @Summary      Выход
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}
