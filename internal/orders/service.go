package orders

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lateladelgol/storefront-backend/pkg/db/models"
	"github.com/lateladelgol/storefront-backend/pkg/enums"
	pkgerrors "github.com/lateladelgol/storefront-backend/pkg/errors"
	"github.com/lateladelgol/storefront-backend/pkg/logger"
	"github.com/lateladelgol/storefront-backend/pkg/mail"
	"github.com/lateladelgol/storefront-backend/pkg/metrics"
	"go.uber.org/multierr"
)

// ServiceParams groups dependencies for the order pipeline. Primary and
// Fallback are nil when the matching transport is not configured.
type ServiceParams struct {
	OrderRepo OrderRepository
	Primary   mail.Sender
	Fallback  mail.Sender
	From      string
	FromName  string
	Receiver  string
	Logger    *logger.Logger
	Metrics   *metrics.MailMetrics
}

// Service runs the order submission pipeline.
type Service interface {
	Submit(ctx context.Context, sub Submission) (Result, error)
}

type service struct {
	orderRepo OrderRepository
	primary   mail.Sender
	fallback  mail.Sender
	from      string
	fromName  string
	receiver  string
	logg      *logger.Logger
	metrics   *metrics.MailMetrics
}

// NewService builds the order pipeline with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.OrderRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order repo is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &service{
		orderRepo: params.OrderRepo,
		primary:   params.Primary,
		fallback:  params.Fallback,
		from:      params.From,
		fromName:  params.FromName,
		receiver:  params.Receiver,
		logg:      params.Logger,
		metrics:   params.Metrics,
	}, nil
}

// Submit runs the full pipeline: validate, persist the pending audit
// record, render, deliver through exactly one transport, reconcile.
//
// When the primary transport is configured it is the only one tried;
// a primary failure does not fall back. The fallback relay only serves
// deployments with no primary key at all.
func (s *service) Submit(ctx context.Context, sub Submission) (Result, error) {
	ctx = s.logg.WithPipeline(ctx, pipelineName)

	if err := validateSubmission(sub); err != nil {
		return Result{}, err
	}

	items := make([]models.OrderItem, 0, len(sub.Items))
	for _, item := range sub.Items {
		items = append(items, models.OrderItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	total := recomputeTotal(sub.Items)

	record := &models.OrderRecord{
		ID:        uuid.New(),
		Name:      sub.Name,
		Email:     sub.Email,
		Items:     items,
		Total:     total,
		Status:    enums.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	// The audit record is the system of record: if it cannot be
	// written, the submission stops before any send attempt.
	if err := s.orderRepo.Create(ctx, record); err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order record")
	}
	ctx = s.logg.WithField(ctx, "order_record_id", record.ID.String())

	sender := s.primary
	if sender == nil {
		sender = s.fallback
	}
	if sender == nil {
		// The pending record survives so the order is not lost.
		s.logg.Warn(ctx, "order received but no mail transport is configured")
		return Result{}, pkgerrors.New(pkgerrors.CodeNotConfigured, "no mail transport configured")
	}
	provider := sender.Provider()

	msg := mail.Message{
		From:     s.from,
		FromName: s.fromName,
		To:       s.receiver,
		Subject:  mail.OrderSubject(sub.Name, total),
		HTML:     mail.RenderOrderHTML(sub.Name, sub.Email, items, total),
	}

	started := time.Now()
	sendErr := sender.Send(ctx, msg)
	s.metrics.ObserveDuration(pipelineName, provider.String(), time.Since(started))
	resolvedAt := time.Now().UTC()

	if sendErr != nil {
		s.metrics.IncFailed(pipelineName, provider.String())
		s.logg.Error(ctx, "order notification delivery failed", sendErr)

		combined := sendErr
		if recErr := s.orderRepo.MarkFailed(ctx, record.ID, provider.String(), sendErr.Error(), resolvedAt); recErr != nil {
			s.logg.Error(ctx, "order record reconcile (failed) did not persist", recErr)
			combined = multierr.Append(combined, recErr)
		}
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeDelivery, combined, "order notification delivery failed").
			WithDetails(sendErr.Error())
	}

	s.metrics.IncSent(pipelineName, provider.String())
	if recErr := s.orderRepo.MarkSent(ctx, record.ID, provider.String(), resolvedAt); recErr != nil {
		// The mail is out; a reconcile failure must not fail the response.
		s.logg.Error(ctx, "order record reconcile (sent) did not persist", recErr)
	}
	s.logg.Info(ctx, "order notification delivered via "+provider.String())

	return Result{RecordID: record.ID, Provider: provider}, nil
}

func validateSubmission(sub Submission) error {
	if strings.TrimSpace(sub.Name) == "" ||
		strings.TrimSpace(sub.Email) == "" ||
		len(sub.Items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "missing fields")
	}
	return nil
}
