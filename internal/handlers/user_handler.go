package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"sellora/internal/models"
	"sellora/internal/services"
)

type UserHandler struct {
	accounts services.AccountService
}

func NewUserHandler(accounts services.AccountService) *UserHandler {
	return &UserHandler{accounts: accounts}
}

// @Summary      Список активных пользователей
// @Tags         Users
// @Produce      json
// @Success      200  {array}   models.Account
// @Failure      403  {object}  map[string]string
// @Router       /api/users/admin/users [get]
func (h *UserHandler) ListActive(c *gin.Context) {
	users, err := h.accounts.ListActive()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary      Запрос кода восстановления пароля
// @Tags         Users
// @Produce      json
// @Param        email  query     string  true  "Email аккаунта"
// @Success      200    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /api/users/recover-password [patch]
func (h *UserHandler) RecoverPassword(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required."})
		return
	}

	if err := h.accounts.RequestRecovery(email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password recovery email sent."})
}

// @Summary      Подтверждение кода восстановления
// @Tags         Users
// @Produce      json
// @Param        email  query     string  true  "Email аккаунта"
// @Param        code   query     string  true  "6-значный код"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  map[string]string
// @Router       /api/users/recover-password/verify [patch]
func (h *UserHandler) VerifyRecoveryCode(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	code := strings.TrimSpace(c.Query("code"))
	if email == "" || code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and code are required."})
		return
	}

	ok, err := h.accounts.ConfirmCode(email, code)
	if err != nil {
		respondError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid verification code."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification successful."})
}

// @Summary      Смена пароля по подтверждённому коду
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        recovery  body      models.PasswordRecoveryRequest  true  "Новый пароль"
// @Success      200       {object}  map[string]string
// @Failure      400       {object}  map[string]string
// @Router       /api/users/verify/reset-password [post]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req models.PasswordRecoveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accounts.ResetPassword(req.Email, req.NewPassword, req.ConfirmPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful."})
}

// @Summary      Деактивация пользователя
// @Tags         Users
// @Produce      json
// @Param        user_id  query     int  true  "ID пользователя"
// @Success      200      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /api/users/admin/deactivate [patch]
func (h *UserHandler) Deactivate(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid User ID."})
		return
	}

	if err := h.accounts.Deactivate(userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deactivated successfully."})
}
