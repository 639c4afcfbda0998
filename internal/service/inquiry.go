package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"estate/internal/model"
	"estate/internal/notify"
	"estate/internal/repository"

	"github.com/google/uuid"
)

// Inquiry errors, mapped to 400/404 by the handler
var (
	ErrMissingFields = errors.New("missing required inquiry fields")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrInvalidStatus = errors.New("invalid inquiry status")
)

// InquiryConfirmation is shown to the submitter after a successful inquiry
const InquiryConfirmation = "Your inquiry has been submitted. We will contact you soon!"

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// InquiryService validates, stores and announces property inquiries
type InquiryService struct {
	repo     repository.InquiryRepository
	notifier notify.Notifier
	logger   *slog.Logger
	now      func() time.Time
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(repo repository.InquiryRepository, notifier notify.Notifier, logger *slog.Logger) *InquiryService {
	if notifier == nil {
		notifier = notify.NoopNotifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &InquiryService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Submit validates and stores an inquiry, then publishes an inquiry event.
// A failed publish is logged and does not fail the submission.
func (s *InquiryService) Submit(ctx context.Context, req *model.InquiryRequest) (*model.InquiryResponse, error) {
	propertyID := strings.TrimSpace(req.PropertyID)
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)
	message := strings.TrimSpace(req.Message)

	if propertyID == "" || name == "" || email == "" || phone == "" || message == "" {
		return nil, ErrMissingFields
	}
	if !emailRe.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	// ids are uuid columns; anything else cannot match a property
	if _, err := uuid.Parse(propertyID); err != nil {
		return nil, ErrPropertyNotFound
	}
	property, err := s.repo.GetPropertyRef(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}

	inquiry := &model.Inquiry{
		ID:         uuid.NewString(),
		PropertyID: propertyID,
		Name:       name,
		Email:      email,
		Phone:      phone,
		Message:    message,
		Status:     model.InquiryNew,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.CreateInquiry(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("failed to submit inquiry: %w", err)
	}

	s.logger.Info("inquiry submitted", "inquiry_id", inquiry.ID, "property_id", propertyID)

	event := model.InquiryEvent{
		InquiryID:     inquiry.ID,
		PropertyID:    propertyID,
		PropertyTitle: property.Title,
		ContactEmail:  property.ContactEmail,
		Name:          name,
		Email:         email,
		Phone:         phone,
		Message:       message,
		CreatedAt:     inquiry.CreatedAt,
	}
	if err := s.notifier.InquiryCreated(ctx, event); err != nil {
		s.logger.Warn("failed to publish inquiry event", "inquiry_id", inquiry.ID, "error", err)
	}

	return &model.InquiryResponse{
		Success: true,
		Inquiry: model.InquiryReceipt{
			ID:      inquiry.ID,
			Message: InquiryConfirmation,
		},
	}, nil
}

// List returns inquiries newest first, optionally filtered by property and status
func (s *InquiryService) List(ctx context.Context, filter model.InquiryFilter) ([]model.InquiryWithProperty, error) {
	filter.PropertyID = strings.TrimSpace(filter.PropertyID)
	filter.Status = model.InquiryStatus(strings.ToUpper(strings.TrimSpace(string(filter.Status))))

	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if filter.PropertyID != "" {
		if _, err := uuid.Parse(filter.PropertyID); err != nil {
			return []model.InquiryWithProperty{}, nil
		}
	}

	inquiries, err := s.repo.ListInquiries(ctx, filter)
	if err != nil {
		return nil, err
	}
	if inquiries == nil {
		inquiries = []model.InquiryWithProperty{}
	}
	return inquiries, nil
}
