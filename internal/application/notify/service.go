package notify

import (
	"context"
	"log"

	"github.com/maxgala/aspire-provisioner/internal/domain"
)

// Service selects the email template for an account type and dispatches it.
// Delivery is best-effort: the router logs a failure and moves on.
type Service interface {
	Send(ctx context.Context, accountType domain.AccountType, p domain.Profile) error
}

// Mailer is the delivery transport (SES in production, SMTP locally).
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type service struct {
	mailer Mailer
}

func NewService(mailer Mailer) Service {
	return &service{mailer: mailer}
}

func (s *service) Send(ctx context.Context, accountType domain.AccountType, p domain.Profile) error {
	var body string
	switch accountType {
	case domain.AccountFree, domain.AccountPaid:
		body = welcomeBody(p.FirstName)
	case domain.AccountMentor:
		body = mentorPendingBody(p.FirstName)
	default:
		// ADMIN and UNKNOWN accounts receive no email in this workflow.
		log.Printf("notify: no template for account type %s, skipping", accountType)
		return nil
	}
	return s.mailer.Send(ctx, p.Email, Subject, body)
}
