package services

import (
	"context"
	"time"

	"github.com/kofiasare/tourbay/internal/helpers"
	"github.com/kofiasare/tourbay/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateBookingInput is the canonical DTO for booking creation. Clients have
// historically sent the participant count under either "participants" or
// "travelers"; Normalize resolves the aliases before validation runs.
type CreateBookingInput struct {
	UserID              string `json:"userId"`
	TourID              string `json:"tourId"`
	Participants        int    `json:"participants"`
	Travelers           int    `json:"travelers"`
	TravelDate          string `json:"travelDate"`
	SpecialRequirements string `json:"specialRequirements"`
	ContactNumber       string `json:"contactNumber"`
	Email               string `json:"email"`
	Status              string `json:"status"`
}

// Normalize maps accepted input aliases onto the canonical fields and trims
// free-text values. "participants" wins when both aliases are set; a zero
// participants counts as unset, so an explicit 0 falls through to
// "travelers" the same way an absent field does.
func (in *CreateBookingInput) Normalize() {
	if in.Participants == 0 {
		in.Participants = in.Travelers
	}
	in.UserID = helpers.StringTrim(in.UserID)
	in.TourID = helpers.StringTrim(in.TourID)
	in.TravelDate = helpers.StringTrim(in.TravelDate)
	in.SpecialRequirements = helpers.StringTrim(in.SpecialRequirements)
	in.ContactNumber = helpers.StringTrim(in.ContactNumber)
	in.Email = helpers.StringTrim(in.Email)
	in.Status = helpers.StringTrim(in.Status)
}

type BookingService struct {
	bookingRepo models.BookingRepo
	tourRepo    models.TourRepo
	userRepo    models.UserRepo
}

func NewBookingService(bookingRepo models.BookingRepo, tourRepo models.TourRepo, userRepo models.UserRepo) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		tourRepo:    tourRepo,
		userRepo:    userRepo,
	}
}

// validate collects every violation so the client sees the full list in one
// failed request rather than fixing them one at a time.
func (bs *BookingService) validate(in *CreateBookingInput) (time.Time, error) {
	var violations []string
	var travelDate time.Time

	if in.UserID == "" {
		violations = append(violations, "User ID is required")
	}
	if in.TourID == "" {
		violations = append(violations, "Tour ID is required")
	}
	if in.Participants < 1 || in.Participants > 10 {
		violations = append(violations, "Number of participants must be between 1 and 10")
	}
	if in.TravelDate == "" {
		violations = append(violations, "Travel date is required")
	} else {
		parsed, err := helpers.ParseTravelDate(in.TravelDate)
		if err != nil {
			violations = append(violations, "Travel date is invalid")
		} else {
			today := helpers.TruncateToDay(time.Now())
			if helpers.TruncateToDay(parsed).Before(today) {
				violations = append(violations, "Travel date cannot be in the past")
			}
			travelDate = parsed
		}
	}
	if in.ContactNumber != "" && !helpers.IsValidContactNumber(in.ContactNumber) {
		violations = append(violations, "Contact number must be a valid 10-digit number")
	}
	if in.Email != "" && !helpers.IsValidEmail(in.Email) {
		violations = append(violations, "Email format is invalid")
	}
	if in.Status != "" && !models.IsValidBookingStatus(in.Status) {
		violations = append(violations, "Status must be one of: pending, confirmed, cancelled, completed")
	}

	if len(violations) > 0 {
		return time.Time{}, &models.ValidationError{Violations: violations}
	}
	return travelDate, nil
}

func (bs *BookingService) CreateBooking(ctx context.Context, in *CreateBookingInput) (*models.BookingView, error) {
	in.Normalize()

	travelDate, err := bs.validate(in)
	if err != nil {
		return nil, err
	}

	userID, err := primitive.ObjectIDFromHex(in.UserID)
	if err != nil {
		return nil, &models.MalformedIDError{Field: "user ID", Value: in.UserID}
	}
	tourID, err := primitive.ObjectIDFromHex(in.TourID)
	if err != nil {
		return nil, &models.MalformedIDError{Field: "tour ID", Value: in.TourID}
	}

	// Existence checks and the insert below are separate reads and writes;
	// a tour or user deleted in between still produces a booking.
	tour, err := bs.tourRepo.GetTourByID(ctx, tourID)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, &models.NotFoundError{Resource: "Tour"}
	}
	user, err := bs.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &models.NotFoundError{Resource: "User"}
	}

	contactNumber := in.ContactNumber
	if contactNumber == "" {
		contactNumber = user.Phone
	}
	email := in.Email
	if email == "" {
		email = user.Email
	}
	status := in.Status
	if status == "" {
		status = models.BookingStatusConfirmed
	}

	now := time.Now()
	booking := &models.Booking{
		UserID:       userID,
		TourID:       tourID,
		Participants: in.Participants,
		TravelDate:   travelDate,
		BookingDate:  now,
		// Price snapshot: never recomputed, even if the tour's price changes.
		TotalPrice:          tour.Price * in.Participants,
		Status:              status,
		SpecialRequirements: in.SpecialRequirements,
		ContactNumber:       contactNumber,
		Email:               email,
		UpdatedAt:           now,
	}

	created, err := bs.bookingRepo.CreateBooking(ctx, booking)
	if err != nil {
		return nil, err
	}
	return models.NewBookingView(created, tour, user), nil
}

func (bs *BookingService) GetUserBookings(ctx context.Context, userID string) (*models.BookingList, error) {
	parsed, err := primitive.ObjectIDFromHex(helpers.StringTrim(userID))
	if err != nil {
		return nil, &models.MalformedIDError{Field: "user ID", Value: userID}
	}

	bookings, err := bs.bookingRepo.GetBookingsByUser(ctx, parsed)
	if err != nil {
		return nil, err
	}
	return bs.buildList(ctx, bookings)
}

func (bs *BookingService) GetAllBookings(ctx context.Context) (*models.BookingList, error) {
	bookings, err := bs.bookingRepo.GetAllBookings(ctx)
	if err != nil {
		return nil, err
	}
	return bs.buildList(ctx, bookings)
}

func (bs *BookingService) buildList(ctx context.Context, bookings []*models.Booking) (*models.BookingList, error) {
	list := &models.BookingList{Bookings: make([]*models.BookingView, 0, len(bookings))}
	for _, b := range bookings {
		// Dangling references resolve to nil and render as sentinels.
		tour, err := bs.tourRepo.GetTourByID(ctx, b.TourID)
		if err != nil {
			return nil, err
		}
		user, err := bs.userRepo.GetUserByID(ctx, b.UserID)
		if err != nil {
			return nil, err
		}
		list.Bookings = append(list.Bookings, models.NewBookingView(b, tour, user))
		if b.Status == models.BookingStatusConfirmed {
			list.ConfirmedCount++
		}
	}
	list.Total = len(list.Bookings)
	return list, nil
}

func (bs *BookingService) UpdateBookingStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	parsed, err := primitive.ObjectIDFromHex(helpers.StringTrim(id))
	if err != nil {
		return nil, &models.MalformedIDError{Field: "booking ID", Value: id}
	}

	status = helpers.StringTrim(status)
	if !models.IsValidBookingStatus(status) {
		return nil, models.NewValidationError("Status must be one of: pending, confirmed, cancelled, completed")
	}

	// Any status may follow any other; there is no transition graph.
	updated, err := bs.bookingRepo.UpdateBookingStatus(ctx, parsed, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &models.NotFoundError{Resource: "Booking"}
	}
	return updated, nil
}

func (bs *BookingService) DeleteBooking(ctx context.Context, id string) error {
	parsed, err := primitive.ObjectIDFromHex(helpers.StringTrim(id))
	if err != nil {
		return &models.MalformedIDError{Field: "booking ID", Value: id}
	}

	deleted, err := bs.bookingRepo.DeleteBooking(ctx, parsed)
	if err != nil {
		return err
	}
	if !deleted {
		return &models.NotFoundError{Resource: "Booking"}
	}
	return nil
}
