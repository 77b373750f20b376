package app

// Screen identifies one navigable screen.
type Screen string

const (
	ScreenLogin          Screen = "login"
	ScreenMain           Screen = "main"
	ScreenServiceDetails Screen = "service_details"
	ScreenBookingForm    Screen = "booking_form"
)

// Tab identifies one of the main screen's tabs. Switching tabs does not
// destroy the other tab's state.
type Tab string

const (
	TabServices Tab = "services"
	TabBookings Tab = "bookings"
)

// Route is one entry in the navigation stack. ServiceID is the only
// parameter ever carried between screens; the target re-resolves the full
// record from the catalog.
type Route struct {
	Screen    Screen
	ServiceID int
}

// Nav is the screen stack. The top route is the current screen.
type Nav struct {
	stack     []Route
	ActiveTab Tab
}

func NewNav() *Nav {
	return &Nav{stack: []Route{{Screen: ScreenLogin}}, ActiveTab: TabServices}
}

// Current returns the route on top of the stack.
func (n *Nav) Current() Route {
	return n.stack[len(n.stack)-1]
}

// Push navigates forward to a parameterless screen.
func (n *Nav) Push(s Screen) {
	n.stack = append(n.stack, Route{Screen: s})
}

// PushService navigates forward carrying a service id.
func (n *Nav) PushService(s Screen, serviceID int) {
	n.stack = append(n.stack, Route{Screen: s, ServiceID: serviceID})
}

// Replace resets the history to a single route, so Back cannot reach
// anything that came before.
func (n *Nav) Replace(s Screen) {
	n.stack = []Route{{Screen: s}}
}

// Back pops the current screen. It reports whether anything was popped;
// the root route stays put.
func (n *Nav) Back() bool {
	if len(n.stack) <= 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}

// SwitchTab selects a main-screen tab.
func (n *Nav) SwitchTab(t Tab) {
	n.ActiveTab = t
}

// GoToBookings unwinds to the main screen with the bookings tab selected,
// the route taken after a successful booking.
func (n *Nav) GoToBookings() {
	for len(n.stack) > 1 && n.Current().Screen != ScreenMain {
		n.stack = n.stack[:len(n.stack)-1]
	}
	if n.Current().Screen != ScreenMain {
		n.stack = []Route{{Screen: ScreenMain}}
	}
	n.ActiveTab = TabBookings
}

// Depth returns the stack depth.
func (n *Nav) Depth() int { return len(n.stack) }
