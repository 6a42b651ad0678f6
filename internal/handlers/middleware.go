package handlers

import (
	"errors"
	"net/http"
	"strings"

	"bloglist/internal/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	errUnknownEndpoint = "Unknown endpoint"
	errInternal        = "internal server error"

	userIDKey = "userId"
)

// requestLogger logs every inbound request before it is dispatched.
func (h *Handler) requestLogger(c *gin.Context) {
	if h.log != nil {
		h.log.Infow("request", "method", c.Request.Method, "path", c.Request.URL.Path)
	}
	c.Next()
}

// tokenExtractor pulls a bearer token from the Authorization header, if any.
// A missing header passes through untouched; a supplied token that fails to
// parse terminates the request via the error handler.
func (h *Handler) tokenExtractor(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.Next()
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		c.Next()
		return
	}

	userID, err := h.services.ParseToken(parts[1])
	if err != nil {
		_ = c.Error(apperrors.ErrInvalidToken)
		c.Abort()
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}

// errorHandler is the terminal error normalizer: it runs after the route
// handler and maps the forwarded failure kind onto the HTTP error contract.
// Unclassified errors are logged and answered with a generic 500.
func (h *Handler) errorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}
	err := c.Errors.Last().Err

	// The raw message is logged before any mapping happens.
	if h.log != nil {
		h.log.Errorw("request_failed", "err", err.Error())
	}

	var (
		validationErr *apperrors.ValidationError
		policyErr     *apperrors.PolicyViolation
	)
	switch {
	case errors.Is(err, apperrors.ErrMalformedID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformatted id"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &policyErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": policyErr.Message})
	case errors.Is(err, apperrors.ErrDuplicateUsername):
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrDuplicateUsername.Error()})
	case errors.Is(err, apperrors.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidToken.Error()})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidCredentials.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
	}
}

// unknownEndpoint answers every unmatched route.
func (h *Handler) unknownEndpoint(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": errUnknownEndpoint})
}
