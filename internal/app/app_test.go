package app

import (
	"errors"
	"testing"

	"github.com/Aastech07/Servicebookingapp/internal/catalog"
	"github.com/Aastech07/Servicebookingapp/internal/model"
)

// fakeStore records calls so tests can assert on write behavior.
type fakeStore struct {
	items       []model.Booking
	createCalls int
	listErr     error
}

func (f *fakeStore) List() ([]model.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.Booking, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeStore) Create(b model.Booking) error {
	f.createCalls++
	f.items = append(f.items, b)
	return nil
}

func (f *fakeStore) Delete(id string) error {
	filtered := f.items[:0]
	for _, it := range f.items {
		if it.ID != id {
			filtered = append(filtered, it)
		}
	}
	f.items = filtered
	return nil
}

var testCatalog = catalog.New([]model.Service{
	{ID: 1, Name: "Haircut", Duration: "30m", Price: 200},
	{ID: 2, Name: "Manicure", Duration: "45m", Price: 350},
})

func newTestApp() (*App, *fakeStore) {
	fs := &fakeStore{}
	return New(testCatalog, fs), fs
}

func TestLoginGate(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		ok       bool
	}{
		{"valid email and password", "user@example.com", "secret123", true},
		{"email without at sign", "userexample.com", "secret123", false},
		{"password too short", "user@example.com", "12345", false},
		{"both invalid", "userexample.com", "123", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, _ := newTestApp()
			err := a.Login(tc.email, tc.password)
			if tc.ok {
				if err != nil {
					t.Fatalf("Login = %v, want success", err)
				}
				if a.Nav.Current().Screen != ScreenMain {
					t.Errorf("login success should land on main, got %s", a.Nav.Current().Screen)
				}
				if a.Nav.Depth() != 1 {
					t.Errorf("login must replace history, depth = %d", a.Nav.Depth())
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Login = %v, want ValidationError", err)
			}
			if a.Nav.Current().Screen != ScreenLogin {
				t.Errorf("failed login must not navigate, got %s", a.Nav.Current().Screen)
			}
		})
	}
}

func TestSubmitBookingValidationGate(t *testing.T) {
	cases := []struct {
		name       string
		date, time string
		ok         bool
	}{
		{"both present", "2024-12-25", "14:30", true},
		{"nonsense strings still pass", "whenever", "late", true},
		{"empty date", "", "14:30", false},
		{"empty time", "2024-12-25", "", false},
		{"whitespace date", "   ", "14:30", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, fs := newTestApp()
			b, err := a.SubmitBooking(1, tc.date, tc.time, "")
			if !tc.ok {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("SubmitBooking = %v, want ValidationError", err)
				}
				if fs.createCalls != 0 {
					t.Errorf("validation failure must not write, createCalls = %d", fs.createCalls)
				}
				return
			}
			if err != nil {
				t.Fatalf("SubmitBooking: %v", err)
			}
			if fs.createCalls != 1 {
				t.Errorf("createCalls = %d, want exactly 1", fs.createCalls)
			}
			if b.ID == "" {
				t.Error("booking id not generated")
			}
			if b.Date != tc.date || b.Time != tc.time {
				t.Errorf("fields not carried verbatim: %+v", b)
			}
		})
	}
}

func TestSubmitBookingSnapshotsServiceName(t *testing.T) {
	a, fs := newTestApp()
	b, err := a.SubmitBooking(1, "2024-12-25", "14:30", "please be quick")
	if err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}
	if b.ServiceID != 1 || b.ServiceName != "Haircut" {
		t.Errorf("service snapshot wrong: %+v", b)
	}
	if fs.items[0].Notes != "please be quick" {
		t.Errorf("notes not persisted: %+v", fs.items[0])
	}
}

func TestSubmitBookingRoutesToBookingsTab(t *testing.T) {
	a, _ := newTestApp()
	a.Nav.Replace(ScreenMain)
	a.Nav.PushService(ScreenServiceDetails, 1)
	a.Nav.PushService(ScreenBookingForm, 1)

	if _, err := a.SubmitBooking(1, "2024-12-25", "14:30", ""); err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}
	if a.Nav.Current().Screen != ScreenMain {
		t.Errorf("success should land on main, got %s", a.Nav.Current().Screen)
	}
	if a.Nav.ActiveTab != TabBookings {
		t.Errorf("success should select bookings tab, got %s", a.Nav.ActiveTab)
	}
}

func TestSubmitBookingUnknownService(t *testing.T) {
	a, fs := newTestApp()
	_, err := a.SubmitBooking(42, "2024-12-25", "14:30", "")
	if !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("SubmitBooking = %v, want ErrServiceNotFound", err)
	}
	if fs.createCalls != 0 {
		t.Errorf("unknown service must not write, createCalls = %d", fs.createCalls)
	}
}

func TestServiceByID(t *testing.T) {
	a, _ := newTestApp()
	s, err := a.ServiceByID(2)
	if err != nil || s.Name != "Manicure" {
		t.Errorf("ServiceByID(2) = %+v, %v", s, err)
	}
	if _, err := a.ServiceByID(99); !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("ServiceByID(99) = %v, want ErrServiceNotFound", err)
	}
}

func TestLoadBookingsReplacesView(t *testing.T) {
	a, fs := newTestApp()
	a.BookingItems = []model.Booking{{ID: "stale"}}
	fs.items = []model.Booking{{ID: "fresh-1"}, {ID: "fresh-2"}}

	if err := a.LoadBookings(); err != nil {
		t.Fatalf("LoadBookings: %v", err)
	}
	if len(a.BookingItems) != 2 || a.BookingItems[0].ID != "fresh-1" {
		t.Errorf("view not replaced: %+v", a.BookingItems)
	}
}

func TestLoadBookingsPropagatesError(t *testing.T) {
	a, fs := newTestApp()
	fs.listErr = errors.New("disk gone")
	if err := a.LoadBookings(); err == nil {
		t.Fatal("LoadBookings should propagate store errors")
	}
}

func TestDeleteBookingReloads(t *testing.T) {
	a, fs := newTestApp()
	fs.items = []model.Booking{{ID: "a"}, {ID: "b"}}
	if err := a.LoadBookings(); err != nil {
		t.Fatalf("LoadBookings: %v", err)
	}

	if err := a.DeleteBooking("a"); err != nil {
		t.Fatalf("DeleteBooking: %v", err)
	}
	if len(a.BookingItems) != 1 || a.BookingItems[0].ID != "b" {
		t.Errorf("view after delete: %+v", a.BookingItems)
	}

	// Unknown id: silent no-op, view unchanged.
	if err := a.DeleteBooking("zzz"); err != nil {
		t.Fatalf("DeleteBooking unknown id: %v", err)
	}
	if len(a.BookingItems) != 1 {
		t.Errorf("no-op delete changed view: %+v", a.BookingItems)
	}
}

func TestCountLabels(t *testing.T) {
	a, fs := newTestApp()

	if got := a.BookingCountLabel(); got != "0 bookings scheduled" {
		t.Errorf("empty label = %q", got)
	}
	fs.items = []model.Booking{{ID: "a"}}
	_ = a.LoadBookings()
	if got := a.BookingCountLabel(); got != "1 booking scheduled" {
		t.Errorf("singular label = %q", got)
	}
	fs.items = append(fs.items, model.Booking{ID: "b"})
	_ = a.LoadBookings()
	if got := a.BookingCountLabel(); got != "2 bookings scheduled" {
		t.Errorf("plural label = %q", got)
	}

	a.SearchServices("cut")
	if got := a.ServiceCountLabel(); got != "1 service available" {
		t.Errorf("service label = %q", got)
	}
	a.SearchServices("")
	if got := a.ServiceCountLabel(); got != "2 services available" {
		t.Errorf("service label = %q", got)
	}
}

func TestSearchServices(t *testing.T) {
	a, _ := newTestApp()
	got := a.SearchServices("CUT")
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("SearchServices(CUT) = %+v", got)
	}
	// The query sticks for the derived view.
	if vis := a.VisibleServices(); len(vis) != 1 {
		t.Errorf("VisibleServices after search = %+v", vis)
	}
}
