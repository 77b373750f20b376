package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Aastech07/Servicebookingapp/internal/catalog"
	"github.com/Aastech07/Servicebookingapp/internal/model"
	"github.com/Aastech07/Servicebookingapp/internal/store"
)

// ErrServiceNotFound reports a navigation parameter that does not resolve
// to any catalog entry. The only recovery is going back.
var ErrServiceNotFound = errors.New("service not found")

// ValidationError is a form-level failure: the message is shown to the
// user and no state is mutated.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// App holds application state shared across screens. The UI layer renders
// it and forwards user intents; it never touches the store directly.
type App struct {
	Catalog *catalog.Catalog
	Store   store.Store
	Nav     *Nav

	Email string // set after a successful login

	// Bookings tab view, replaced wholesale on each load.
	BookingItems []model.Booking

	// Services tab state; the filtered view is recomputed per keystroke.
	SearchQuery string
}

func New(c *catalog.Catalog, s store.Store) *App {
	return &App{Catalog: c, Store: s, Nav: NewNav()}
}

// Login checks credential shape only; there is no backend to talk to.
// On success the navigation history is replaced so back cannot return
// to the login screen.
func (a *App) Login(email, password string) error {
	if !strings.Contains(email, "@") {
		return &ValidationError{Field: "email", Message: "Please enter a valid email"}
	}
	if len(password) < 6 {
		return &ValidationError{Field: "password", Message: "Password must be at least 6 characters"}
	}
	a.Email = email
	a.Nav.Replace(ScreenMain)
	return nil
}

// SearchServices recomputes the filtered services view for the query.
func (a *App) SearchServices(query string) []model.Service {
	a.SearchQuery = query
	return a.Catalog.Filter(query)
}

// VisibleServices returns the filtered view for the current query.
func (a *App) VisibleServices() []model.Service {
	return a.Catalog.Filter(a.SearchQuery)
}

// ServiceCountLabel describes the current filtered view, e.g.
// "3 services available".
func (a *App) ServiceCountLabel() string {
	n := len(a.VisibleServices())
	if n == 1 {
		return "1 service available"
	}
	return fmt.Sprintf("%d services available", n)
}

// ServiceByID resolves a service carried as a navigation parameter.
func (a *App) ServiceByID(id int) (model.Service, error) {
	s, ok := a.Catalog.Find(id)
	if !ok {
		return model.Service{}, ErrServiceNotFound
	}
	return s, nil
}

// SubmitBooking validates the form, writes the booking and routes to the
// bookings tab. Date and time accept any non-empty string; no calendar
// parsing happens here.
func (a *App) SubmitBooking(serviceID int, date, timeOfDay, notes string) (model.Booking, error) {
	svc, err := a.ServiceByID(serviceID)
	if err != nil {
		return model.Booking{}, err
	}
	if strings.TrimSpace(date) == "" || strings.TrimSpace(timeOfDay) == "" {
		return model.Booking{}, &ValidationError{Field: "date", Message: "Please enter date & time"}
	}
	b := model.Booking{
		ID:          uuid.NewString(),
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Date:        date,
		Time:        timeOfDay,
		Notes:       notes,
	}
	if err := a.Store.Create(b); err != nil {
		return model.Booking{}, err
	}
	a.Nav.GoToBookings()
	return b, nil
}

// LoadBookings replaces the bookings view with the stored collection.
func (a *App) LoadBookings() error {
	items, err := a.Store.List()
	if err != nil {
		return err
	}
	a.BookingItems = items
	return nil
}

// BookingCountLabel describes the loaded view, e.g. "2 bookings scheduled".
func (a *App) BookingCountLabel() string {
	n := len(a.BookingItems)
	if n == 1 {
		return "1 booking scheduled"
	}
	return fmt.Sprintf("%d bookings scheduled", n)
}

// DeleteBooking removes one booking and reloads the view. Deleting an
// unknown id is a no-op at the store. The confirmation step lives in the
// UI; this is only called once the user has confirmed.
func (a *App) DeleteBooking(id string) error {
	if err := a.Store.Delete(id); err != nil {
		return err
	}
	return a.LoadBookings()
}
