package domain

import "time"

// UserStatus mirrors the account's state at the identity provider when the
// record was created.
type UserStatus string

const (
	StatusEnabled  UserStatus = "ENABLED"
	StatusDisabled UserStatus = "DISABLED"
)

// UserRecord is the local user row created once per confirmation event.
// The workflow is create-only: no update or delete path exists here.
type UserRecord struct {
	RecordID     string      `json:"id" dynamodbav:"record_id"`
	Username     string      `json:"username" dynamodbav:"username"` // the email, unique key
	UserType     AccountType `json:"user_type" dynamodbav:"user_type"`
	Industry     string      `json:"industry" dynamodbav:"industry"`
	IndustryTags string      `json:"industry_tags" dynamodbav:"industry_tags"`
	FirstName    string      `json:"first_name" dynamodbav:"first_name"`
	LastName     string      `json:"last_name" dynamodbav:"last_name"`
	Status       UserStatus  `json:"status" dynamodbav:"status"`
	CreatedAt    time.Time   `json:"created_at" dynamodbav:"created_at"`
}
