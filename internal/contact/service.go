package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lateladelgol/storefront-backend/pkg/db/models"
	"github.com/lateladelgol/storefront-backend/pkg/enums"
	pkgerrors "github.com/lateladelgol/storefront-backend/pkg/errors"
	"github.com/lateladelgol/storefront-backend/pkg/logger"
	"github.com/lateladelgol/storefront-backend/pkg/mail"
	"github.com/lateladelgol/storefront-backend/pkg/metrics"
)

const pipelineName = "contact"

// Soft-failure messages surfaced to the caller. The endpoint stays a
// 200 in both cases; the inquiry itself was received.
const (
	msgNotConfigured = "Recibido; correo no enviado porque SMTP no está configurado."
	msgSMTPFailed    = "Recibido pero fallo el envío por SMTP."
)

// Submission is the contact form payload. Every field is optional;
// absent values render as a dash in the notification.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Outcome reports how far delivery got. Sent=false is not an error:
// the inquiry was recorded (best-effort) and the caller is told why no
// mail went out.
type Outcome struct {
	Sent     bool
	Provider enums.MailProvider
	Message  string
}

// ServiceParams groups dependencies for the contact pipeline. Primary
// and Fallback are nil when the matching transport is not configured.
type ServiceParams struct {
	ContactRepo ContactRepository
	Primary     mail.Sender
	Fallback    mail.Sender
	From        string
	FromName    string
	To          string
	Logger      *logger.Logger
	Metrics     *metrics.MailMetrics
}

// Service runs the contact submission pipeline.
type Service interface {
	Submit(ctx context.Context, sub Submission) (Outcome, error)
}

type service struct {
	contactRepo ContactRepository
	primary     mail.Sender
	fallback    mail.Sender
	from        string
	fromName    string
	to          string
	logg        *logger.Logger
	metrics     *metrics.MailMetrics
}

// NewService builds the contact pipeline with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.ContactRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "contact repo is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &service{
		contactRepo: params.ContactRepo,
		primary:     params.Primary,
		fallback:    params.Fallback,
		from:        params.From,
		fromName:    params.FromName,
		to:          params.To,
		logg:        params.Logger,
		metrics:     params.Metrics,
	}, nil
}

// Submit records the inquiry best-effort and then walks the provider
// chain: primary, then the SMTP relay, then a soft not-configured
// answer. Unlike the order pipeline, a primary failure here falls
// through to the relay.
func (s *service) Submit(ctx context.Context, sub Submission) (Outcome, error) {
	ctx = s.logg.WithPipeline(ctx, pipelineName)

	record := &models.ContactRecord{
		ID:        uuid.New(),
		Name:      sub.Name,
		Email:     sub.Email,
		Message:   sub.Message,
		Sent:      false,
		CreatedAt: time.Now().UTC(),
	}
	recorded := true
	if err := s.contactRepo.Create(ctx, record); err != nil {
		// Best-effort only: the send still happens.
		recorded = false
		s.logg.Error(ctx, "contact record write failed, continuing with delivery", err)
	} else {
		ctx = s.logg.WithField(ctx, "contact_record_id", record.ID.String())
	}

	msg := mail.Message{
		From:     s.from,
		FromName: s.fromName,
		To:       s.to,
		Subject:  mail.ContactSubject(sub.Name),
		HTML:     mail.RenderContactHTML(sub.Name, sub.Email, sub.Message),
	}

	if s.primary != nil {
		err := s.deliver(ctx, s.primary, msg)
		if err == nil {
			s.reconcileSent(ctx, recorded, record.ID, s.primary.Provider())
			return Outcome{Sent: true, Provider: s.primary.Provider()}, nil
		}
		s.logg.Warn(ctx, "primary contact delivery failed, trying relay: "+err.Error())
	}

	if s.fallback == nil {
		return Outcome{Sent: false, Message: msgNotConfigured}, nil
	}

	if err := s.deliver(ctx, s.fallback, msg); err != nil {
		if recorded {
			if recErr := s.contactRepo.MarkError(ctx, record.ID, err.Error()); recErr != nil {
				s.logg.Error(ctx, "contact record error-reconcile did not persist", recErr)
			}
		}
		return Outcome{Sent: false, Message: msgSMTPFailed}, nil
	}
	s.reconcileSent(ctx, recorded, record.ID, s.fallback.Provider())
	return Outcome{Sent: true, Provider: s.fallback.Provider()}, nil
}

func (s *service) deliver(ctx context.Context, sender mail.Sender, msg mail.Message) error {
	provider := sender.Provider().String()
	started := time.Now()
	err := sender.Send(ctx, msg)
	s.metrics.ObserveDuration(pipelineName, provider, time.Since(started))
	if err != nil {
		s.metrics.IncFailed(pipelineName, provider)
		return err
	}
	s.metrics.IncSent(pipelineName, provider)
	return nil
}

func (s *service) reconcileSent(ctx context.Context, recorded bool, id uuid.UUID, provider enums.MailProvider) {
	if !recorded {
		return
	}
	if err := s.contactRepo.MarkSent(ctx, id, provider.String(), time.Now().UTC()); err != nil {
		s.logg.Error(ctx, "contact record sent-reconcile did not persist", err)
	}
	s.logg.Info(ctx, "contact notification delivered via "+provider.String())
}
