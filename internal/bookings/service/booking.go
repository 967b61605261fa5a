package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	bookingserrors "beautybar/internal/bookings/errors"
	"beautybar/internal/bookings/repository"
	"beautybar/internal/notify"
	"beautybar/pkg/config"
	apperrors "beautybar/pkg/errors"
	"beautybar/pkg/model"
	"beautybar/pkg/validate"
)

type BookingService interface {
	// Submit persists a public booking request and fires the best-effort
	// customer SMS and business email. Only persistence failures surface
	// to the caller.
	Submit(ctx context.Context, booking *model.Booking) (*model.BookingSubmitResponse, error)
	GetAll(ctx context.Context) ([]*model.Booking, error)
	// UpdateStatus replaces the booking status and, on transition to
	// confirmed or cancelled, sends one SMS built from the pre-update
	// snapshot.
	UpdateStatus(ctx context.Context, id, status string) (string, error)
}

type bookingService struct {
	repo     repository.BookingRepository
	sms      notify.SMSSender
	mailer   notify.EmailSender
	validate *validator.Validate
	cfg      *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	sms notify.SMSSender,
	mailer notify.EmailSender,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:     repo,
		sms:      sms,
		mailer:   mailer,
		validate: validate.New(),
		cfg:      cfg,
	}
}

func (s *bookingService) Submit(ctx context.Context, booking *model.Booking) (*model.BookingSubmitResponse, error) {
	if err := validate.Struct(s.validate, booking); err != nil {
		return nil, err
	}

	booking.ID = uuid.NewString()
	booking.Status = model.BookingStatusPending
	booking.BookingType = model.BookingTypeHome
	booking.SMSSent = false
	booking.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	smsSent := s.sms.Send(ctx, booking.Phone, s.receivedSMS(booking))
	if smsSent {
		if err := s.repo.MarkSMSSent(ctx, booking.ID); err != nil {
			s.cfg.Log.Error("Failed to mark booking SMS sent", "booking_id", booking.ID, "error", err)
		} else {
			booking.SMSSent = true
		}
	}

	if s.mailer.Configured() {
		subject, html := notify.BookingNotificationEmail(booking, smsSent)
		if !s.mailer.Send(ctx, s.cfg.SenderEmail, subject, html) {
			s.cfg.Log.Error("Failed to send booking notification email", "booking_id", booking.ID)
		}
	}

	s.cfg.Log.Info("Booking submitted",
		"booking_id", booking.ID,
		"service", booking.Service,
		"preferred_date", booking.PreferredDate,
		"sms_sent", smsSent,
	)

	return &model.BookingSubmitResponse{
		Message:   "Booking request submitted successfully",
		BookingID: booking.ID,
		SMSSent:   smsSent,
	}, nil
}

func (s *bookingService) GetAll(ctx context.Context) ([]*model.Booking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id, status string) (string, error) {
	if !model.ValidBookingStatus(status) {
		return "", apperrors.InvalidInput("Invalid status")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return "", apperrors.NotFoundWithID("Booking", id)
		}
		return "", apperrors.Internal("Failed to retrieve booking", err)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return "", apperrors.NotFoundWithID("Booking", id)
		}
		return "", apperrors.Internal("Failed to update booking status", err)
	}

	// The SMS interpolates the snapshot read above; none of those fields
	// change in this call, so pre- and post-update text are identical.
	switch status {
	case model.BookingStatusConfirmed:
		s.sms.Send(ctx, booking.Phone, s.confirmedSMS(booking))
	case model.BookingStatusCancelled:
		s.sms.Send(ctx, booking.Phone, s.cancelledSMS(booking))
	}

	s.cfg.Log.Info("Booking status updated", "booking_id", id, "status", status)
	return fmt.Sprintf("Booking status updated to %s", status), nil
}

func (s *bookingService) receivedSMS(b *model.Booking) string {
	return fmt.Sprintf(
		"Hi %s! Your BeautyBar609 home service booking is received. Service: %s, Date: %s at %s. We'll confirm shortly. Call %s for queries.",
		b.Name, b.Service, b.PreferredDate, b.PreferredTime, s.cfg.BusinessPhone,
	)
}

func (s *bookingService) confirmedSMS(b *model.Booking) string {
	return fmt.Sprintf(
		"Hi %s! Great news! Your BeautyBar609 home service for %s on %s at %s is CONFIRMED. See you soon!",
		b.Name, b.Service, b.PreferredDate, b.PreferredTime,
	)
}

func (s *bookingService) cancelledSMS(b *model.Booking) string {
	return fmt.Sprintf(
		"Hi %s, your BeautyBar609 booking for %s has been cancelled. Please call %s to reschedule.",
		b.Name, b.PreferredDate, s.cfg.BusinessPhone,
	)
}
