package domain

// Cognito trigger sources this workflow distinguishes. Forgot-password
// confirmations must never re-run provisioning.
const (
	TriggerConfirmSignUp         = "PostConfirmation_ConfirmSignUp"
	TriggerConfirmForgotPassword = "PostConfirmation_ConfirmForgotPassword"
)

// User-pool attribute names carried on a confirmation event.
const (
	AttrEmail        = "email"
	AttrGivenName    = "given_name"
	AttrFamilyName   = "family_name"
	AttrPicture      = "picture"
	AttrUserType     = "custom:user_type"
	AttrIndustry     = "custom:industry"
	AttrIndustryTags = "custom:industry_tags"
)

// ConfirmationEvent is the inbound trigger, consumed once per invocation.
// The transport that delivers it requires the same event back unchanged.
type ConfirmationEvent struct {
	TriggerSource string
	UserPoolID    string
	UserName      string
	Attributes    map[string]string
}

// Profile is the validated attribute set extracted from a confirmation event.
// Email, FirstName and LastName are mandatory for every branch except the
// forgot-password short-circuit.
type Profile struct {
	Email        string `validate:"required,email"`
	FirstName    string `validate:"required"`
	LastName     string `validate:"required"`
	Picture      string
	UserType     string
	Industry     string
	IndustryTags string
}

// Profile extracts the profile attributes. Optional attributes default to
// the empty string; no trimming or case normalization is applied.
func (e *ConfirmationEvent) Profile() Profile {
	return Profile{
		Email:        e.Attributes[AttrEmail],
		FirstName:    e.Attributes[AttrGivenName],
		LastName:     e.Attributes[AttrFamilyName],
		Picture:      e.Attributes[AttrPicture],
		UserType:     e.Attributes[AttrUserType],
		Industry:     e.Attributes[AttrIndustry],
		IndustryTags: e.Attributes[AttrIndustryTags],
	}
}
