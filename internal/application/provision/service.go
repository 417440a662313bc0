package provision

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/maxgala/aspire-provisioner/internal/domain"
	"github.com/maxgala/aspire-provisioner/internal/pkg/id"
	"github.com/maxgala/aspire-provisioner/internal/pkg/validate"
)

// Service routes a confirmation event: classify the account, run the fixed
// step sequence for that classification, and hand the event back unchanged.
// Each step is individually fault-isolated — a failure is logged and the
// remaining steps still run. Only a missing required attribute is fatal.
type Service interface {
	Provision(ctx context.Context, ev *domain.ConfirmationEvent) (*domain.ConfirmationEvent, error)
}

type identityGate interface {
	Disable(ctx context.Context, userPoolID, userName string) error
}

type recordSyncer interface {
	Sync(ctx context.Context, p domain.Profile, accountType domain.AccountType, status domain.UserStatus) error
}

type imageNormalizer interface {
	Normalize(ctx context.Context, email, pictureURL, userPoolID, userName string) error
}

type notifier interface {
	Send(ctx context.Context, accountType domain.AccountType, p domain.Profile) error
}

type auditStore interface {
	Put(ctx context.Context, rec *domain.ProvisionRecord) error
}

type reviewAlerter interface {
	Alert(ctx context.Context, accountType domain.AccountType, email string) error
}

type service struct {
	gate     identityGate
	records  recordSyncer
	pictures imageNormalizer
	notifier notifier
	audit    auditStore
	alerts   reviewAlerter
}

type ServiceDeps struct {
	Gate     identityGate
	Records  recordSyncer
	Pictures imageNormalizer
	Notifier notifier
	Audit    auditStore    // optional
	Alerts   reviewAlerter // optional
}

func NewService(deps ServiceDeps) Service {
	return &service{
		gate:     deps.Gate,
		records:  deps.Records,
		pictures: deps.Pictures,
		notifier: deps.Notifier,
		audit:    deps.Audit,
		alerts:   deps.Alerts,
	}
}

func (s *service) Provision(ctx context.Context, ev *domain.ConfirmationEvent) (*domain.ConfirmationEvent, error) {
	// Password-reset confirmations must never re-trigger provisioning.
	if ev.TriggerSource == domain.TriggerConfirmForgotPassword {
		return ev, nil
	}

	p := ev.Profile()
	if err := validate.Struct(p); err != nil {
		return nil, fmt.Errorf("confirmation event for %q: %s: %w", ev.UserName, err, domain.ErrBadRequest)
	}

	accountType := domain.ClassifyAccount(p.UserType)
	log.Printf("provision: confirming user %s with account type %s", p.Email, accountType)

	steps := map[string]string{}
	attempt := func(step string, fn func() error) {
		if err := fn(); err != nil {
			log.Printf("provision: step %s failed for %s: %v", step, p.Email, err)
			steps[step] = domain.StepFailed
			return
		}
		steps[step] = domain.StepOK
	}

	switch accountType {
	case domain.AccountAdmin:
		// Admin signups are disabled pending manual approval. No record,
		// no image work, no email.
		attempt(domain.StepDisableIdentity, func() error {
			return s.gate.Disable(ctx, ev.UserPoolID, ev.UserName)
		})

	case domain.AccountFree, domain.AccountPaid:
		// Account stays enabled at the identity provider.
		attempt(domain.StepSyncRecord, func() error {
			return s.records.Sync(ctx, p, accountType, domain.StatusEnabled)
		})
		attempt(domain.StepNormalizeImage, func() error {
			return s.pictures.Normalize(ctx, p.Email, p.Picture, ev.UserPoolID, ev.UserName)
		})
		attempt(domain.StepSendEmail, func() error {
			return s.notifier.Send(ctx, accountType, p)
		})

	case domain.AccountMentor:
		// Mentors are vetted manually before going live.
		attempt(domain.StepDisableIdentity, func() error {
			return s.gate.Disable(ctx, ev.UserPoolID, ev.UserName)
		})
		attempt(domain.StepSyncRecord, func() error {
			return s.records.Sync(ctx, p, accountType, domain.StatusDisabled)
		})
		attempt(domain.StepNormalizeImage, func() error {
			return s.pictures.Normalize(ctx, p.Email, p.Picture, ev.UserPoolID, ev.UserName)
		})
		attempt(domain.StepSendEmail, func() error {
			return s.notifier.Send(ctx, accountType, p)
		})

	default:
		log.Printf("provision: ERROR invalid user_type %q for %s, disabling account", p.UserType, p.Email)
		attempt(domain.StepDisableIdentity, func() error {
			return s.gate.Disable(ctx, ev.UserPoolID, ev.UserName)
		})
	}

	if accountType.HeldForReview() {
		if s.alerts != nil {
			attempt(domain.StepReviewAlert, func() error {
				return s.alerts.Alert(ctx, accountType, p.Email)
			})
		} else {
			steps[domain.StepReviewAlert] = domain.StepSkipped
		}
	}

	s.writeAudit(ctx, ev, p, accountType, steps)

	return ev, nil
}

// writeAudit records the branch outcome best-effort. An audit failure never
// blocks the event.
func (s *service) writeAudit(ctx context.Context, ev *domain.ConfirmationEvent, p domain.Profile, accountType domain.AccountType, steps map[string]string) {
	if s.audit == nil {
		return
	}
	rec := &domain.ProvisionRecord{
		ProvisionID: id.New(),
		Username:    p.Email,
		UserPoolID:  ev.UserPoolID,
		Trigger:     ev.TriggerSource,
		AccountType: accountType,
		Steps:       steps,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.audit.Put(ctx, rec); err != nil {
		log.Printf("provision: audit write failed for %s: %v", p.Email, err)
	}
}
