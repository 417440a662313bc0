package domain

// AccountType is the classification derived from the user_type attribute.
// It drives the per-branch behavior of the provisioning router.
type AccountType string

const (
	AccountAdmin   AccountType = "ADMIN"
	AccountFree    AccountType = "FREE"
	AccountPaid    AccountType = "PAID"
	AccountMentor  AccountType = "MENTOR"
	AccountUnknown AccountType = "UNKNOWN"
)

// ClassifyAccount maps a raw user_type value to an AccountType.
// Matching is exact and case-sensitive: whitespace or case variants fall
// through to AccountUnknown, as does the empty string.
func ClassifyAccount(userType string) AccountType {
	switch userType {
	case "ADMIN":
		return AccountAdmin
	case "FREE":
		return AccountFree
	case "PAID":
		return AccountPaid
	case "MENTOR":
		return AccountMentor
	default:
		return AccountUnknown
	}
}

// HeldForReview reports whether an account of this type is kept out of the
// product pending manual action (disabled at the identity provider).
func (t AccountType) HeldForReview() bool {
	switch t {
	case AccountAdmin, AccountMentor, AccountUnknown:
		return true
	default:
		return false
	}
}
