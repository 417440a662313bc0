package domain

import "time"

// Step outcomes recorded in a ProvisionRecord.
const (
	StepOK      = "ok"
	StepFailed  = "failed"
	StepSkipped = "skipped"
)

// Step names used as keys in ProvisionRecord.Steps.
const (
	StepDisableIdentity = "disable_identity"
	StepSyncRecord      = "sync_record"
	StepNormalizeImage  = "normalize_image"
	StepSendEmail       = "send_email"
	StepReviewAlert     = "review_alert"
)

// ProvisionRecord is the best-effort audit row written after each
// confirmation event is routed. It never blocks the branch outcome.
type ProvisionRecord struct {
	ProvisionID string            `json:"id" dynamodbav:"provision_id"`
	Username    string            `json:"username" dynamodbav:"username"`
	UserPoolID  string            `json:"user_pool_id" dynamodbav:"user_pool_id"`
	Trigger     string            `json:"trigger" dynamodbav:"trigger"`
	AccountType AccountType       `json:"account_type" dynamodbav:"account_type"`
	Steps       map[string]string `json:"steps" dynamodbav:"steps"`
	CreatedAt   time.Time         `json:"created_at" dynamodbav:"created_at"`
}
