package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIsValidBookingStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "cancelled", "completed"} {
		assert.True(t, IsValidBookingStatus(s))
	}
	for _, s := range []string{"archived", "Confirmed", "", "canceled"} {
		assert.False(t, IsValidBookingStatus(s))
	}
}

func TestBookingDisplayCode(t *testing.T) {
	booking := &Booking{ID: primitive.NewObjectID()}
	code := booking.DisplayCode()

	hex := booking.ID.Hex()
	assert.Equal(t, BookingCodeTag+hex[len(hex)-8:], code)
	assert.Len(t, code, len(BookingCodeTag)+8)
}

func TestNewBookingViewDualAliases(t *testing.T) {
	booking := &Booking{
		ID:           primitive.NewObjectID(),
		UserID:       primitive.NewObjectID(),
		TourID:       primitive.NewObjectID(),
		Participants: 3,
		TotalPrice:   3000,
		Status:       BookingStatusConfirmed,
	}
	tour := &Tour{ID: booking.TourID, Title: "Wli Falls Hike", Price: 1000, Duration: "1 day"}
	user := &User{ID: booking.UserID, Name: "Ama", Email: "ama@example.com", Phone: "0244123456"}

	view := NewBookingView(booking, tour, user)

	assert.Equal(t, view.Participants, view.Travelers)
	assert.Equal(t, view.TotalPrice, view.TotalAmount)
	assert.Equal(t, 3000, view.TotalAmount)
	assert.Equal(t, "Wli Falls Hike", view.Tour.Title)
	assert.Equal(t, "Ama", view.User.Name)
	assert.Equal(t, booking.DisplayCode(), view.BookingID)
}

func TestNewBookingViewDanglingReferences(t *testing.T) {
	booking := &Booking{
		ID:     primitive.NewObjectID(),
		UserID: primitive.NewObjectID(),
		TourID: primitive.NewObjectID(),
	}

	view := NewBookingView(booking, nil, nil)

	assert.Equal(t, MissingTourTitle, view.Tour.Title)
	assert.Equal(t, PlaceholderImage, view.Tour.Image)
	assert.Equal(t, MissingFieldSentinel, view.User.Name)
	assert.Equal(t, MissingFieldSentinel, view.User.Email)
	assert.Equal(t, MissingFieldSentinel, view.User.Phone)
}
