package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"

	"insight-mailer/internal/apierrors"
	"insight-mailer/internal/observability"
	"insight-mailer/internal/providers"
	"insight-mailer/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProviderRegistry manages provider configurations
type ProviderRegistry interface {
	List(ctx context.Context, role string) ([]store.ProviderConfig, error)
	Create(ctx context.Context, req providers.CreateRequest) (store.ProviderConfig, error)
	Update(ctx context.Context, id uuid.UUID, params store.UpdateProviderConfigParams) (store.ProviderConfig, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID) (store.ProviderConfig, error)
	TestConnection(ctx context.Context, id uuid.UUID) error
}

type Handler struct {
	registry ProviderRegistry
	logger   *observability.Logger
}

func New(registry ProviderRegistry, logger *observability.Logger) Handler {
	return Handler{registry: registry, logger: logger}
}

// CreateProviderRequest represents the HTTP request for creating a provider configuration
type CreateProviderRequest struct {
	Role          string   `json:"role" binding:"required,oneof=llm mail_transport"`
	ProviderName  string   `json:"provider_name" binding:"required,min=1,max=100"`
	APIKey        string   `json:"api_key" binding:"required,min=1"`
	APIURL        *string  `json:"api_url,omitempty" binding:"omitempty,url"`
	ModelName     *string  `json:"model_name,omitempty"`
	MaxTokens     *int     `json:"max_tokens,omitempty" binding:"omitempty,gt=0"`
	Temperature   *float64 `json:"temperature,omitempty" binding:"omitempty,gte=0,lte=2"`
	SenderAddress *string  `json:"sender_address,omitempty" binding:"omitempty,email"`
	IsActive      bool     `json:"is_active"`
}

// UpdateProviderRequest carries the fields to change; absent fields keep their value
type UpdateProviderRequest struct {
	ProviderName  *string  `json:"provider_name,omitempty" binding:"omitempty,min=1,max=100"`
	APIKey        *string  `json:"api_key,omitempty" binding:"omitempty,min=1"`
	APIURL        *string  `json:"api_url,omitempty" binding:"omitempty,url"`
	ModelName     *string  `json:"model_name,omitempty"`
	MaxTokens     *int     `json:"max_tokens,omitempty" binding:"omitempty,gt=0"`
	Temperature   *float64 `json:"temperature,omitempty" binding:"omitempty,gte=0,lte=2"`
	SenderAddress *string  `json:"sender_address,omitempty" binding:"omitempty,email"`
}

// HandleListProviders lists configurations, optionally for one role
func (h *Handler) HandleListProviders(c *gin.Context) {
	ctx := c.Request.Context()

	configs, err := h.registry.List(ctx, c.Query("role"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"providers": configs})
}

func (h *Handler) HandleCreateProvider(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "role", Value: req.Role},
		observability.Field{Key: "provider_name", Value: req.ProviderName},
	)

	cfg, err := h.registry.Create(ctx, providers.CreateRequest{
		Role:          req.Role,
		ProviderName:  req.ProviderName,
		APIKey:        req.APIKey,
		APIURL:        req.APIURL,
		ModelName:     req.ModelName,
		MaxTokens:     req.MaxTokens,
		Temperature:   req.Temperature,
		SenderAddress: req.SenderAddress,
		IsActive:      req.IsActive,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cfg)
}

func (h *Handler) HandleUpdateProvider(c *gin.Context) {
	ctx, id, ok := h.providerContext(c)
	if !ok {
		return
	}

	var req UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	cfg, err := h.registry.Update(ctx, id, store.UpdateProviderConfigParams{
		ProviderName:  req.ProviderName,
		APIKey:        req.APIKey,
		APIURL:        req.APIURL,
		ModelName:     req.ModelName,
		MaxTokens:     req.MaxTokens,
		Temperature:   req.Temperature,
		SenderAddress: req.SenderAddress,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

func (h *Handler) HandleDeleteProvider(c *gin.Context) {
	ctx, id, ok := h.providerContext(c)
	if !ok {
		return
	}

	if err := h.registry.Delete(ctx, id); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleActivateProvider makes a configuration the only active one of its role
func (h *Handler) HandleActivateProvider(c *gin.Context) {
	ctx, id, ok := h.providerContext(c)
	if !ok {
		return
	}

	cfg, err := h.registry.SetActive(ctx, id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// HandleTestProvider runs a small completion against the configuration
func (h *Handler) HandleTestProvider(c *gin.Context) {
	ctx, id, ok := h.providerContext(c)
	if !ok {
		return
	}

	if err := h.registry.TestConnection(ctx, id); err != nil {
		// anything the mapper does not recognise came from the backend itself
		if apierrors.MapError(err).StatusCode == http.StatusInternalServerError {
			err = apierrors.BadGateway(apierrors.CodeConnectionFailed, "The provider rejected the connection test", err)
		}
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) providerContext(c *gin.Context) (context.Context, uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid provider ID format"))
		return nil, uuid.Nil, false
	}
	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "provider_id", Value: id.String()})
	return ctx, id, true
}
