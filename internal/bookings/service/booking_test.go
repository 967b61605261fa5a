package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingserrors "beautybar/internal/bookings/errors"
	"beautybar/pkg/config"
	apperrors "beautybar/pkg/errors"
	"beautybar/pkg/logger"
	"beautybar/pkg/model"
)

type mockBookingRepo struct {
	create       func(booking *model.Booking) error
	findByID     func(id string) (*model.Booking, error)
	findAll      func() ([]*model.Booking, error)
	updateStatus func(id, status string) error
	markSMSSent  func(id string) error
}

func (m *mockBookingRepo) Create(_ context.Context, booking *model.Booking) error {
	if m.create == nil {
		return nil
	}
	return m.create(booking)
}

func (m *mockBookingRepo) FindByID(_ context.Context, id string) (*model.Booking, error) {
	if m.findByID == nil {
		return nil, bookingserrors.ErrNotFound
	}
	return m.findByID(id)
}

func (m *mockBookingRepo) FindAll(_ context.Context) ([]*model.Booking, error) {
	if m.findAll == nil {
		return []*model.Booking{}, nil
	}
	return m.findAll()
}

func (m *mockBookingRepo) UpdateStatus(_ context.Context, id, status string) error {
	if m.updateStatus == nil {
		return nil
	}
	return m.updateStatus(id, status)
}

func (m *mockBookingRepo) MarkSMSSent(_ context.Context, id string) error {
	if m.markSMSSent == nil {
		return nil
	}
	return m.markSMSSent(id)
}

type mockSMS struct {
	succeed  bool
	messages []string
	numbers  []string
}

func (m *mockSMS) Send(_ context.Context, to, message string) bool {
	m.numbers = append(m.numbers, to)
	m.messages = append(m.messages, message)
	return m.succeed
}

type mockMailer struct {
	configured bool
	succeed    bool
	sent       []string
}

func (m *mockMailer) Configured() bool {
	return m.configured
}

func (m *mockMailer) Send(_ context.Context, to, subject, html string) bool {
	m.sent = append(m.sent, to)
	return m.succeed
}

func testConfig() *config.Config {
	return &config.Config{
		BusinessPhone: "08058578131",
		SenderEmail:   "noreply@beautybar609.com",
		Log: logger.New(logger.Config{
			Level:  logger.ERROR,
			Format: logger.TEXT,
			Output: io.Discard,
		}),
	}
}

func validBooking() *model.Booking {
	return &model.Booking{
		Name:          "Amaka",
		Phone:         "08012345678",
		Address:       "12 Allen Avenue, Ikeja",
		Service:       "Gel Extensions",
		PreferredDate: "2026-09-01",
		PreferredTime: "10:00",
	}
}

func TestSubmit(t *testing.T) {
	t.Run("fills defaults and reports sms result", func(t *testing.T) {
		var created *model.Booking
		var marked string
		repo := &mockBookingRepo{
			create: func(booking *model.Booking) error {
				created = booking
				return nil
			},
			markSMSSent: func(id string) error {
				marked = id
				return nil
			},
		}
		sms := &mockSMS{succeed: true}
		svc := NewBookingService(repo, sms, &mockMailer{}, testConfig())

		resp, err := svc.Submit(context.Background(), validBooking())

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, model.BookingStatusPending, created.Status)
		assert.Equal(t, model.BookingTypeHome, created.BookingType)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, created.ID, resp.BookingID)
		assert.Equal(t, created.ID, marked)
		assert.True(t, resp.SMSSent)
		assert.Equal(t, "Booking request submitted successfully", resp.Message)
		require.Len(t, sms.messages, 1)
		assert.Contains(t, sms.messages[0], "Hi Amaka!")
		assert.Contains(t, sms.messages[0], "Gel Extensions")
		assert.Contains(t, sms.messages[0], "08058578131")
	})

	t.Run("sms failure does not fail the booking", func(t *testing.T) {
		repo := &mockBookingRepo{
			markSMSSent: func(id string) error {
				t.Fatal("sms_sent must not be set when the send failed")
				return nil
			},
		}
		svc := NewBookingService(repo, &mockSMS{}, &mockMailer{}, testConfig())

		resp, err := svc.Submit(context.Background(), validBooking())

		require.NoError(t, err)
		assert.False(t, resp.SMSSent)
	})

	t.Run("missing required fields fail validation", func(t *testing.T) {
		svc := NewBookingService(&mockBookingRepo{}, &mockSMS{}, &mockMailer{}, testConfig())

		booking := validBooking()
		booking.Phone = ""
		_, err := svc.Submit(context.Background(), booking)

		require.Error(t, err)
		assert.Equal(t, apperrors.CodeValidation, apperrors.AsAppError(err).Code)
	})

	t.Run("notifies the business when email is configured", func(t *testing.T) {
		mailer := &mockMailer{configured: true, succeed: true}
		svc := NewBookingService(&mockBookingRepo{}, &mockSMS{succeed: true}, mailer, testConfig())

		_, err := svc.Submit(context.Background(), validBooking())

		require.NoError(t, err)
		assert.Equal(t, []string{"noreply@beautybar609.com"}, mailer.sent)
	})
}

func TestUpdateStatus(t *testing.T) {
	stored := func(id string) (*model.Booking, error) {
		b := validBooking()
		b.ID = id
		b.Status = model.BookingStatusPending
		return b, nil
	}

	t.Run("invalid status is rejected before any read", func(t *testing.T) {
		repo := &mockBookingRepo{
			findByID: func(id string) (*model.Booking, error) {
				t.Fatal("must not hit the repository for an invalid status")
				return nil, nil
			},
		}
		svc := NewBookingService(repo, &mockSMS{}, &mockMailer{}, testConfig())

		_, err := svc.UpdateStatus(context.Background(), "b1", "archived")

		require.Error(t, err)
		appErr := apperrors.AsAppError(err)
		assert.Equal(t, apperrors.CodeInvalidInput, appErr.Code)
		assert.Equal(t, "Invalid status", appErr.Message)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc := NewBookingService(&mockBookingRepo{}, &mockSMS{}, &mockMailer{}, testConfig())

		_, err := svc.UpdateStatus(context.Background(), "missing", model.BookingStatusConfirmed)

		require.Error(t, err)
		assert.Equal(t, apperrors.CodeNotFound, apperrors.AsAppError(err).Code)
	})

	t.Run("sms fires only for confirmed and cancelled", func(t *testing.T) {
		cases := []struct {
			status      string
			wantSMS     bool
			wantPhrases []string
		}{
			{status: model.BookingStatusConfirmed, wantSMS: true, wantPhrases: []string{"CONFIRMED", "Gel Extensions"}},
			{status: model.BookingStatusCancelled, wantSMS: true, wantPhrases: []string{"cancelled", "08058578131"}},
			{status: model.BookingStatusCompleted, wantSMS: false},
			{status: model.BookingStatusPending, wantSMS: false},
		}

		for _, tc := range cases {
			t.Run(tc.status, func(t *testing.T) {
				sms := &mockSMS{succeed: true}
				svc := NewBookingService(&mockBookingRepo{findByID: stored}, sms, &mockMailer{}, testConfig())

				message, err := svc.UpdateStatus(context.Background(), "b1", tc.status)

				require.NoError(t, err)
				assert.True(t, strings.HasSuffix(message, tc.status))
				if !tc.wantSMS {
					assert.Empty(t, sms.messages)
					return
				}
				require.Len(t, sms.messages, 1)
				for _, phrase := range tc.wantPhrases {
					assert.Contains(t, sms.messages[0], phrase)
				}
			})
		}
	})
}
