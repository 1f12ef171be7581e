package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingColName = "bookings"

	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"

	// Tag prefixed to the short display code shown to travellers.
	BookingCodeTag = "BK-"
)

func IsValidBookingStatus(status string) bool {
	switch status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

type Booking struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID              primitive.ObjectID `bson:"user_id" json:"userId"`
	TourID              primitive.ObjectID `bson:"tour_id" json:"tourId"`
	Participants        int                `bson:"participants" json:"participants"`
	TravelDate          time.Time          `bson:"travel_date" json:"travelDate"`
	BookingDate         time.Time          `bson:"booking_date" json:"bookingDate"`
	TotalPrice          int                `bson:"total_price" json:"totalPrice"`
	Status              string             `bson:"status" json:"status"`
	SpecialRequirements string             `bson:"special_requirements" json:"specialRequirements"`
	ContactNumber       string             `bson:"contact_number" json:"contactNumber"`
	Email               string             `bson:"email" json:"email"`
	UpdatedAt           time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (b *Booking) BeforeCreate() error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	return nil
}

// DisplayCode derives the short booking reference from the record id.
func (b *Booking) DisplayCode() string {
	hex := b.ID.Hex()
	if len(hex) > 8 {
		hex = hex[len(hex)-8:]
	}
	return BookingCodeTag + hex
}

type UserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingView is the enriched booking returned to clients. Participants and
// travel cost are each exposed under two aliases; older clients read the
// travelers/totalAmount pair and must keep working.
type BookingView struct {
	ID                  string      `json:"id"`
	BookingID           string      `json:"bookingId"`
	UserID              string      `json:"userId"`
	TourID              string      `json:"tourId"`
	Participants        int         `json:"participants"`
	Travelers           int         `json:"travelers"`
	TravelDate          time.Time   `json:"travelDate"`
	BookingDate         time.Time   `json:"bookingDate"`
	TotalPrice          int         `json:"totalPrice"`
	TotalAmount         int         `json:"totalAmount"`
	Status              string      `json:"status"`
	SpecialRequirements string      `json:"specialRequirements,omitempty"`
	ContactNumber       string      `json:"contactNumber,omitempty"`
	Email               string      `json:"email,omitempty"`
	Tour                TourSummary `json:"tour"`
	User                UserSummary `json:"user"`
}

// BookingList wraps a list response with its derived counts.
type BookingList struct {
	Bookings       []*BookingView `json:"bookings"`
	Total          int            `json:"total"`
	ConfirmedCount int            `json:"confirmedCount"`
}

// NewBookingView joins a booking with its tour and user records. Either
// reference may be nil when the entity was deleted after the booking was
// written; sentinel values are substituted so list reads never fail.
func NewBookingView(b *Booking, tour *Tour, user *User) *BookingView {
	view := &BookingView{
		ID:                  b.ID.Hex(),
		BookingID:           b.DisplayCode(),
		UserID:              b.UserID.Hex(),
		TourID:              b.TourID.Hex(),
		Participants:        b.Participants,
		Travelers:           b.Participants,
		TravelDate:          b.TravelDate,
		BookingDate:         b.BookingDate,
		TotalPrice:          b.TotalPrice,
		TotalAmount:         b.TotalPrice,
		Status:              b.Status,
		SpecialRequirements: b.SpecialRequirements,
		ContactNumber:       b.ContactNumber,
		Email:               b.Email,
		Tour:                SummarizeTour(tour),
	}
	if user != nil {
		view.User = UserSummary{
			Name:  user.Name,
			Email: user.Email,
			Phone: user.Phone,
		}
	} else {
		view.User = UserSummary{
			Name:  MissingFieldSentinel,
			Email: MissingFieldSentinel,
			Phone: MissingFieldSentinel,
		}
	}
	return view
}
