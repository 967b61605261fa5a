package model

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"

	BookingTypeHome = "home"
)

// ValidBookingStatus reports whether s is one of the four booking statuses.
// Any valid status may replace any other; there is no transition graph.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID            string `json:"id" bson:"id"`
	Name          string `json:"name" bson:"name" validate:"required"`
	Phone         string `json:"phone" bson:"phone" validate:"required"`
	Email         string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Address       string `json:"address" bson:"address" validate:"required"`
	Service       string `json:"service" bson:"service" validate:"required"`
	PreferredDate string `json:"preferred_date" bson:"preferred_date" validate:"required"`
	PreferredTime string `json:"preferred_time" bson:"preferred_time" validate:"required"`
	Notes         string `json:"notes" bson:"notes"`
	Status        string `json:"status" bson:"status"`
	BookingType   string `json:"booking_type" bson:"booking_type"`
	SMSSent       bool   `json:"sms_sent" bson:"sms_sent"`
	CreatedAt     string `json:"created_at" bson:"created_at"`
}

type BookingStatusUpdate struct {
	Status string `json:"status" validate:"required"`
}

type BookingSubmitResponse struct {
	Message   string `json:"message"`
	BookingID string `json:"booking_id"`
	SMSSent   bool   `json:"sms_sent"`
}
