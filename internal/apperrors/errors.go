package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError — единая таксономия ошибок identity-сервиса.
// Code — машинный код для клиента, Status — HTTP-статус по умолчанию,
// Err — внутренняя причина (наружу не отдаётся, только в лог).
type AppError struct {
	Code    string
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func UserNotFound(message string) *AppError {
	if message == "" {
		message = "User not found."
	}
	return &AppError{Code: "USER_NOT_FOUND", Status: http.StatusNotFound, Message: message}
}

func EmailAlreadyExists(email string) *AppError {
	return &AppError{Code: "EMAIL_ALREADY_EXISTS", Status: http.StatusBadRequest, Message: "Email already exists."}
}

func InvalidCredentials() *AppError {
	return &AppError{Code: "INVALID_CREDENTIALS", Status: http.StatusUnauthorized, Message: "Invalid credentials."}
}

func VerificationCodeInvalid(message string) *AppError {
	if message == "" {
		message = "Verification code is invalid or expired."
	}
	return &AppError{Code: "INVALID_VERIFICATION_CODE", Status: http.StatusBadRequest, Message: message}
}

func PasswordMismatch() *AppError {
	return &AppError{Code: "PASSWORD_MISMATCH", Status: http.StatusBadRequest, Message: "Passwords do not match."}
}

// RoleNotAssigned — конфигурационная ошибка сервера: у каждого аккаунта
// роль обязана существовать с момента регистрации.
func RoleNotAssigned(message string) *AppError {
	if message == "" {
		message = "User role not assigned"
	}
	return &AppError{Code: "ROLE_NOT_ASSIGNED", Status: http.StatusInternalServerError, Message: message}
}

func EmailSending(err error) *AppError {
	return &AppError{Code: "EMAIL_SENDING_FAILED", Status: http.StatusInternalServerError, Message: "Failed to send email.", Err: err}
}

func Persistence(message string, err error) *AppError {
	return &AppError{Code: "DATABASE_ERROR", Status: http.StatusInternalServerError, Message: message, Err: err}
}

func TokenGeneration(err error) *AppError {
	return &AppError{Code: "TOKEN_GENERATION_FAILED", Status: http.StatusInternalServerError, Message: "Failed to generate authentication token.", Err: err}
}

// As — удобный помощник для хендлеров.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsCode(err error, code string) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}
