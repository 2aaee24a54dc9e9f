package handler

import (
	"errors"
	"strings"

	"insight-mailer/internal/apierrors"
	"insight-mailer/internal/auth/processor"
	"insight-mailer/internal/observability"

	"github.com/gin-gonic/gin"
)

// AdminIDKey is the gin context key holding the authenticated admin id
const AdminIDKey = "Admin-ID"

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

// HandleJWTMiddleware rejects requests without a valid admin bearer token
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		c.Abort()
		return
	}

	claims, err := h.authProcessor.ValidateAdminToken(ctx, strings.TrimPrefix(tokenHeader, "Bearer "))
	if err != nil {
		if errors.Is(err, processor.ErrNotAdmin) {
			apierrors.RespondWithError(c, apierrors.Forbidden("Admin access required"))
		} else {
			apierrors.RespondWithError(c, apierrors.Unauthorized("Invalid or expired token"))
		}
		c.Abort()
		return
	}

	c.Set(AdminIDKey, claims.Subject)
	c.Request = c.Request.WithContext(observability.WithFields(ctx, observability.Field{Key: "admin_id", Value: claims.Subject}))
	c.Next()
}
