package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeDispatchPass     = "dispatch:pass"
	TypeInsightsGenerate = "insights:generate"
)

// Queue names
const (
	QueueHigh    = "high"
	QueueDefault = "default"
)

// uniqueWindow collapses repeated manual triggers into one task
const uniqueWindow = time.Minute

// DispatchPassPayload represents a manually triggered dispatch pass
type DispatchPassPayload struct {
	RequestedBy string    `json:"requested_by"`
	RequestedAt time.Time `json:"requested_at"`
}

// NewDispatchPassTask creates a new dispatch pass task
func NewDispatchPassTask(payload DispatchPassPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDispatchPass, data,
		asynq.Queue(QueueHigh),
		asynq.MaxRetry(1),
		asynq.Unique(uniqueWindow)), nil
}

// GeneratePayload represents a manually triggered generation run
type GeneratePayload struct {
	Kinds       []string  `json:"kinds,omitempty"`
	RequestedBy string    `json:"requested_by"`
	RequestedAt time.Time `json:"requested_at"`
}

// NewGenerateTask creates a new insight generation task
func NewGenerateTask(payload GeneratePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeInsightsGenerate, data,
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(2),
		asynq.Timeout(time.Hour),
		asynq.Unique(uniqueWindow)), nil
}
