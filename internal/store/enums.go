package store

// Email draft statuses
const (
	EmailDraftStatusDraft    = "draft"
	EmailDraftStatusApproved = "approved"
	EmailDraftStatusRejected = "rejected"
	EmailDraftStatusQueued   = "queued"
	EmailDraftStatusRetrying = "retrying"
	EmailDraftStatusSent     = "sent"
	EmailDraftStatusFailed   = "failed"
)

// ActiveEmailDraftStatuses are the non-terminal statuses covered by the
// one-active-draft-per-period rule.
var ActiveEmailDraftStatuses = []string{
	EmailDraftStatusDraft,
	EmailDraftStatusApproved,
	EmailDraftStatusQueued,
	EmailDraftStatusRetrying,
}

// Provider roles
const (
	ProviderRoleLLM           = "llm"
	ProviderRoleMailTransport = "mail_transport"
)

// Insight kinds
const (
	InsightKindGrowthTrend = "growth_trend"
	InsightKindArtistFocus = "artist_focus"
	InsightKindDiversity   = "diversity"
	InsightKindCustom      = "custom"
)

// User statuses
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)
