package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sellora/internal/apperrors"
	"sellora/internal/catalog"
)

func getToken(c *gin.Context) string {
	if v, ok := c.Get("token"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// respondError — единая точка перевода таксономии в HTTP-ответ.
// Внутренняя причина остаётся в логе, клиенту уходят код и сообщение.
func respondError(c *gin.Context, err error) {
	if appErr, ok := apperrors.As(err); ok {
		if appErr.Err != nil {
			log.Printf("[http][%s] %s: cause=%v", c.Request.URL.Path, appErr.Code, appErr.Err)
		}
		c.JSON(appErr.Status, gin.H{"error": appErr.Message, "code": appErr.Code})
		return
	}

	var connErr *catalog.ConnectionError
	if errors.As(err, &connErr) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to connect to catalog service.", "code": "CATALOG_CONNECTION_FAILED"})
		return
	}
	var respErr *catalog.ResponseError
	if errors.As(err, &respErr) {
		c.JSON(respErr.Status, gin.H{"error": "Catalog service returned an error.", "code": "CATALOG_RESPONSE_ERROR"})
		return
	}
	var decodeErr *catalog.DecodeError
	if errors.As(err, &decodeErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode catalog response.", "code": "CATALOG_DESERIALIZATION_FAILED"})
		return
	}

	log.Printf("[http][%s] unclassified error: %v", c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
}
