package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"insight-mailer/internal/apierrors"
	"insight-mailer/internal/insights/generator"
	"insight-mailer/internal/observability"
	"insight-mailer/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DraftReviewer is the review side of the draft lifecycle
type DraftReviewer interface {
	Get(ctx context.Context, id uuid.UUID) (store.EmailDraft, error)
	List(ctx context.Context, filter store.EmailDraftFilter) ([]store.EmailDraft, error)
	Approve(ctx context.Context, id uuid.UUID, adminID string) (store.EmailDraft, error)
	Reject(ctx context.Context, id uuid.UUID, adminID, reason string) (store.EmailDraft, error)
	Requeue(ctx context.Context, id uuid.UUID, adminID string) (store.EmailDraft, error)
}

// ImmediateSender sends one approved draft outside the schedule
type ImmediateSender interface {
	SendNow(ctx context.Context, id uuid.UUID) (store.EmailDraft, error)
}

// CustomGenerator composes admin prompted drafts
type CustomGenerator interface {
	GenerateCustom(ctx context.Context, req generator.CustomRequest) (generator.Summary, error)
}

// JobTrigger starts background runs
type JobTrigger interface {
	TriggerDispatch(ctx context.Context, requestedBy string) error
	TriggerGeneration(ctx context.Context, kinds []string, requestedBy string) error
}

const (
	adminIDKey   = "Admin-ID"
	defaultLimit = 50
	maxLimit     = 200
)

type Handler struct {
	drafts    DraftReviewer
	sender    ImmediateSender
	generator CustomGenerator
	trigger   JobTrigger
	logger    *observability.Logger
}

func New(drafts DraftReviewer, sender ImmediateSender, customGenerator CustomGenerator, trigger JobTrigger, logger *observability.Logger) Handler {
	return Handler{
		drafts:    drafts,
		sender:    sender,
		generator: customGenerator,
		trigger:   trigger,
		logger:    logger,
	}
}

// RejectRequest carries the reviewer's reason
type RejectRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=1000"`
}

// GenerateRequest selects insight kinds for a manual generation run, empty means all
type GenerateRequest struct {
	Kinds []string `json:"kinds" binding:"omitempty,dive,min=1"`
}

// CustomRequest is an admin prompt to turn into drafts
type CustomRequest struct {
	UserIDs []string `json:"user_ids" binding:"omitempty,dive,uuid"`
	Subject string   `json:"subject" binding:"omitempty,max=255"`
	Prompt  string   `json:"prompt" binding:"required,min=1"`
}

// HandleListDrafts lists drafts filtered by status, user and kind
func (h *Handler) HandleListDrafts(c *gin.Context) {
	ctx := c.Request.Context()

	filter := store.EmailDraftFilter{
		Kind:   c.Query("kind"),
		Limit:  defaultLimit,
		Offset: 0,
	}
	if raw := c.Query("status"); raw != "" {
		filter.Statuses = strings.Split(raw, ",")
	}
	if raw := c.Query("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid user ID format"))
			return
		}
		filter.UserID = &userID
	}
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 && limit <= maxLimit {
			filter.Limit = limit
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil && offset >= 0 {
			filter.Offset = offset
		}
	}

	drafts, err := h.drafts.List(ctx, filter)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"drafts": drafts,
		"limit":  filter.Limit,
		"offset": filter.Offset,
	})
}

// HandleGetDraft returns one draft including its rendered body
func (h *Handler) HandleGetDraft(c *gin.Context) {
	ctx, draftID, ok := h.draftContext(c)
	if !ok {
		return
	}

	draft, err := h.drafts.Get(ctx, draftID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

func (h *Handler) HandleApprove(c *gin.Context) {
	ctx, draftID, ok := h.draftContext(c)
	if !ok {
		return
	}

	draft, err := h.drafts.Approve(ctx, draftID, c.GetString(adminIDKey))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

func (h *Handler) HandleReject(c *gin.Context) {
	ctx, draftID, ok := h.draftContext(c)
	if !ok {
		return
	}

	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	draft, err := h.drafts.Reject(ctx, draftID, c.GetString(adminIDKey), req.Reason)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

// HandleSend delivers an approved draft immediately
func (h *Handler) HandleSend(c *gin.Context) {
	ctx, draftID, ok := h.draftContext(c)
	if !ok {
		return
	}

	draft, err := h.sender.SendNow(ctx, draftID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

// HandleRequeue puts a failed draft back into the approved queue
func (h *Handler) HandleRequeue(c *gin.Context) {
	ctx, draftID, ok := h.draftContext(c)
	if !ok {
		return
	}

	draft, err := h.drafts.Requeue(ctx, draftID, c.GetString(adminIDKey))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

// HandleGenerate queues a batch generation run
func (h *Handler) HandleGenerate(c *gin.Context) {
	ctx := c.Request.Context()

	var req GenerateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.RespondWithValidationError(c, err)
			return
		}
	}

	if err := h.trigger.TriggerGeneration(ctx, req.Kinds, c.GetString(adminIDKey)); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted", "kinds": req.Kinds})
}

// HandleCustom composes a draft for each target user from an admin prompt
func (h *Handler) HandleCustom(c *gin.Context) {
	ctx := c.Request.Context()

	var req CustomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	userIDs := make([]uuid.UUID, 0, len(req.UserIDs))
	for _, raw := range req.UserIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid user ID format"))
			return
		}
		userIDs = append(userIDs, id)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "target_users", Value: len(userIDs)})
	summary, err := h.generator.GenerateCustom(ctx, generator.CustomRequest{
		UserIDs: userIDs,
		Subject: req.Subject,
		Prompt:  req.Prompt,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, summary)
}

// HandleDispatch queues an immediate dispatch pass
func (h *Handler) HandleDispatch(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.trigger.TriggerDispatch(ctx, c.GetString(adminIDKey)); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

func (h *Handler) draftContext(c *gin.Context) (context.Context, uuid.UUID, bool) {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid draft ID format"))
		return nil, uuid.Nil, false
	}

	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "draft_id", Value: draftID.String()},
	)
	return ctx, draftID, true
}
