package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/Aastech07/Servicebookingapp/internal/app"
	"github.com/Aastech07/Servicebookingapp/internal/catalog"
	"github.com/Aastech07/Servicebookingapp/internal/store"
)

const (
	pageLogin    = "login"
	pageMain     = "main"
	pageDetails  = "details"
	pageForm     = "form"
	pageNotFound = "notfound"
)

// UI renders the app screens with tview. All behavior lives in app.App;
// this layer only draws state and forwards intents.
type UI struct {
	app   *tview.Application
	state *app.App
	pages *tview.Pages

	// Login screen
	loginForm  *tview.Form
	loginError *tview.TextView

	// Main screen: both tabs stay alive so switching preserves state.
	mainGrid     *tview.Grid
	tabBar       *tview.TextView
	searchField  *tview.InputField
	servicesList *tview.List
	bookingsList *tview.List
	header       *tview.TextView
	controls     *tview.TextView

	// Lightweight confirmation mode (footer prompt, Enter/Esc)
	confirmCallback func(confirm bool)
	promptMessage   string
}

// New constructs the TUI over the default store and catalog.
func New() *UI {
	st, err := store.NewDefaultFSStore()
	if err != nil {
		// Fallback to a local workspace directory when OS dirs are unavailable.
		st, _ = store.NewFSStore(".svcbook-data")
	}
	return NewWith(app.New(catalog.Default(), st))
}

// NewWith constructs the TUI around existing app state.
func NewWith(state *app.App) *UI {
	u := &UI{app: tview.NewApplication(), state: state, pages: tview.NewPages()}

	// Restore session prefs if available.
	prefs, prefsErr := store.LoadPreferences()
	if prefsErr == nil {
		if prefs.SearchQuery != "" {
			state.SearchQuery = prefs.SearchQuery
		}
		if prefs.LastTab == string(app.TabBookings) {
			state.Nav.SwitchTab(app.TabBookings)
		}
	}

	u.buildLogin(prefs.Email)
	u.buildMain()
	u.pages.AddPage(pageLogin, u.loginPage(), true, true)
	u.pages.AddPage(pageMain, u.mainGrid, true, false)
	return u
}

// Run starts the application event loop.
func (u *UI) Run() error {
	return u.app.SetRoot(u.pages, true).Run()
}

// --- Login screen ---

func (u *UI) buildLogin(rememberedEmail string) {
	u.loginError = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)

	form := tview.NewForm().
		AddInputField("Email", rememberedEmail, 40, nil, nil).
		AddPasswordField("Password", "", 40, '*', nil)
	form.AddButton("Login", func() {
		email := form.GetFormItemByLabel("Email").(*tview.InputField).GetText()
		password := form.GetFormItemByLabel("Password").(*tview.InputField).GetText()
		if err := u.state.Login(email, password); err != nil {
			u.loginError.SetText("[red]" + err.Error() + "[-]")
			return
		}
		u.loginError.SetText("")
		u.savePrefs()
		// History is replaced in state; mirror it here so back never
		// lands on the login page.
		u.pages.RemovePage(pageLogin)
		u.showMain()
	})
	form.SetBorder(true).SetTitle(" Welcome Back — Sign in to continue ")
	u.loginForm = form
}

func (u *UI) loginPage() tview.Primitive {
	inner := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(u.loginForm, 9, 0, true).
		AddItem(u.loginError, 1, 0, false)
	return center(52, 10, inner)
}

// --- Main screen (tabbed Services | Bookings) ---

func (u *UI) buildMain() {
	u.tabBar = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignLeft)
	u.header = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignRight)
	headerRule := tview.NewTextView().SetDynamicColors(true)
	headerRule.SetText("[green]" + strings.Repeat("─", 200))
	u.controls = tview.NewTextView().SetTextAlign(tview.AlignCenter)

	u.searchField = tview.NewInputField().SetLabel("Search services: ").SetFieldWidth(40)
	styleInputField(u.searchField)
	u.searchField.SetText(u.state.SearchQuery)
	u.searchField.SetChangedFunc(func(text string) {
		u.state.SearchServices(text)
		u.refreshServices()
	})
	u.searchField.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyEscape, tcell.KeyDown:
			u.savePrefs()
			u.app.SetFocus(u.servicesList)
			return nil
		}
		return event
	})

	u.servicesList = tview.NewList().ShowSecondaryText(true)
	u.servicesList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		vis := u.state.VisibleServices()
		if index >= 0 && index < len(vis) {
			u.openDetails(vis[index].ID)
		}
	})

	u.bookingsList = tview.NewList().ShowSecondaryText(true)

	grid := tview.NewGrid().
		SetRows(1, 1, 1, 0, 3). // tabs, rule, search/header, list, controls
		SetColumns(0, 90, 0)
	titleGrid := tview.NewGrid().SetRows(1).SetColumns(0, 0)
	titleGrid.AddItem(u.tabBar, 0, 0, 1, 1, 0, 0, false)
	titleGrid.AddItem(u.header, 0, 1, 1, 1, 0, 0, false)
	grid.AddItem(titleGrid, 0, 0, 1, 3, 0, 0, false)
	grid.AddItem(headerRule, 1, 0, 1, 3, 0, 0, false)
	grid.AddItem(u.controls, 4, 0, 1, 3, 0, 0, false)
	u.mainGrid = grid

	grid.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if u.confirmCallback != nil {
			switch event.Key() {
			case tcell.KeyEnter:
				cb := u.confirmCallback
				u.confirmCallback = nil
				u.promptMessage = ""
				cb(true)
				u.updateStatus()
				return nil
			case tcell.KeyEscape:
				cb := u.confirmCallback
				u.confirmCallback = nil
				u.promptMessage = ""
				cb(false)
				u.updateStatus()
				return nil
			}
			// Swallow everything else while confirming.
			return nil
		}
		if u.app.GetFocus() == u.searchField {
			return event
		}
		switch event.Key() {
		case tcell.KeyTab:
			u.switchTab()
			return nil
		case tcell.KeyEscape:
			u.app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case '/':
				if u.state.Nav.ActiveTab == app.TabServices {
					u.app.SetFocus(u.searchField)
				}
				return nil
			case 'j':
				moveDown(u.activeList())
				return nil
			case 'k':
				moveUp(u.activeList())
				return nil
			case 'r':
				if u.state.Nav.ActiveTab == app.TabBookings {
					u.reloadBookings()
				}
				return nil
			case 'x':
				if u.state.Nav.ActiveTab == app.TabBookings {
					u.showDeleteConfirm()
				}
				return nil
			case 'q':
				u.app.Stop()
				return nil
			}
		}
		return event
	})
}

func (u *UI) activeList() *tview.List {
	if u.state.Nav.ActiveTab == app.TabBookings {
		return u.bookingsList
	}
	return u.servicesList
}

func (u *UI) switchTab() {
	if u.state.Nav.ActiveTab == app.TabServices {
		u.state.Nav.SwitchTab(app.TabBookings)
	} else {
		u.state.Nav.SwitchTab(app.TabServices)
	}
	u.savePrefs()
	u.showMain()
}

// showMain lays out the active tab and focuses its list. The inactive
// tab's primitives are left untouched so its state survives switching.
func (u *UI) showMain() {
	u.mainGrid.RemoveItem(u.searchField)
	u.mainGrid.RemoveItem(u.servicesList)
	u.mainGrid.RemoveItem(u.bookingsList)
	if u.state.Nav.ActiveTab == app.TabBookings {
		u.reloadBookings()
		u.mainGrid.AddItem(u.bookingsList, 2, 1, 2, 1, 0, 0, true)
	} else {
		u.refreshServices()
		u.mainGrid.AddItem(u.searchField, 2, 1, 1, 1, 0, 0, false)
		u.mainGrid.AddItem(u.servicesList, 3, 1, 1, 1, 0, 0, true)
	}
	u.pages.SwitchToPage(pageMain)
	u.app.SetFocus(u.activeList())
	u.updateStatus()
}

func (u *UI) updateStatus() {
	services := "Services"
	bookings := "Bookings"
	if u.state.Nav.ActiveTab == app.TabBookings {
		bookings = "[green::b]" + bookings + "[-:-:-]"
	} else {
		services = "[green::b]" + services + "[-:-:-]"
	}
	u.tabBar.SetText(services + "  ·  " + bookings)

	if u.state.Nav.ActiveTab == app.TabBookings {
		u.header.SetText("My Bookings — " + u.state.BookingCountLabel())
	} else {
		u.header.SetText("Our Services — " + u.state.ServiceCountLabel())
	}

	if u.confirmCallback != nil {
		msg := u.promptMessage
		if strings.TrimSpace(msg) == "" {
			msg = "Are you sure?"
		}
		u.controls.SetText(msg + "  [enter] Confirm  [esc] Cancel")
		return
	}
	if u.state.Nav.ActiveTab == app.TabBookings {
		u.controls.SetText("[tab] Services  [x] Delete  [r] Refresh  [j/k] Move  [esc] Quit")
	} else {
		u.controls.SetText("[tab] Bookings  [/] Search  [enter] Details  [j/k] Move  [esc] Quit")
	}
}

func (u *UI) refreshServices() {
	prev := u.servicesList.GetCurrentItem()
	u.servicesList.Clear()
	vis := u.state.VisibleServices()
	if len(vis) == 0 {
		u.servicesList.AddItem("No Services Found", "Try a different search term", 0, nil)
		u.updateStatus()
		return
	}
	for _, s := range vis {
		u.servicesList.AddItem(s.Name, fmt.Sprintf("%s  ·  ₹%.0f", s.Duration, s.Price), 0, nil)
	}
	if prev >= len(vis) {
		prev = len(vis) - 1
	}
	if prev >= 0 {
		u.servicesList.SetCurrentItem(prev)
	}
	u.updateStatus()
}

func (u *UI) reloadBookings() {
	if err := u.state.LoadBookings(); err != nil {
		u.bookingsList.Clear()
		u.bookingsList.AddItem("Could not load bookings", err.Error(), 0, nil)
		u.updateStatus()
		return
	}
	u.refreshBookings()
}

func (u *UI) refreshBookings() {
	prev := u.bookingsList.GetCurrentItem()
	u.bookingsList.Clear()
	items := u.state.BookingItems
	if len(items) == 0 {
		u.bookingsList.AddItem("No Bookings Yet", "Your scheduled bookings will appear here", 0, nil)
		u.updateStatus()
		return
	}
	for _, b := range items {
		second := b.Date + "  " + b.Time
		if b.Notes != "" {
			second += "  ·  " + b.Notes
		}
		u.bookingsList.AddItem(b.ServiceName, second, 0, nil)
	}
	if prev >= len(items) {
		prev = len(items) - 1
	}
	if prev >= 0 {
		u.bookingsList.SetCurrentItem(prev)
	}
	u.updateStatus()
}

func (u *UI) showDeleteConfirm() {
	idx := u.bookingsList.GetCurrentItem()
	items := u.state.BookingItems
	if idx < 0 || idx >= len(items) {
		return
	}
	b := items[idx]
	u.promptMessage = fmt.Sprintf("Delete \"%s\"?", b.ServiceName)
	u.confirmCallback = func(confirm bool) {
		if confirm {
			if err := u.state.DeleteBooking(b.ID); err != nil {
				u.bookingsList.Clear()
				u.bookingsList.AddItem("Could not delete booking", err.Error(), 0, nil)
				return
			}
			u.refreshBookings()
		}
		// on cancel, nothing to do
	}
	u.updateStatus()
}

// --- Service details screen ---

func (u *UI) openDetails(serviceID int) {
	svc, err := u.state.ServiceByID(serviceID)
	if err != nil {
		u.showNotFound()
		return
	}
	u.state.Nav.PushService(app.ScreenServiceDetails, serviceID)

	body := tview.NewTextView().SetDynamicColors(true).SetWrap(true).SetWordWrap(true)
	lines := []string{
		"[::b]" + svc.Name + "[-:-:-]",
		"",
		"Duration:  " + svc.Duration,
		fmt.Sprintf("Price:     ₹%.0f", svc.Price),
	}
	if svc.Description != "" {
		lines = append(lines, "", svc.Description)
	}
	body.SetText(strings.Join(lines, "\n"))

	controls := tview.NewTextView().SetTextAlign(tview.AlignCenter)
	controls.SetText("[b/enter] Book Now  [esc] Back")

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(body, 0, 1, true).
		AddItem(controls, 1, 0, false)
	flex.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			u.goBack(pageDetails)
			return nil
		case tcell.KeyEnter:
			u.openForm(serviceID)
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'b' {
				u.openForm(serviceID)
				return nil
			}
		}
		return event
	})

	wrapped := pad(wrapWithRules(flex), 2, 1)
	u.pages.AddPage(pageDetails, wrapped, true, true)
	u.app.SetFocus(flex)
}

// --- Booking form screen ---

func (u *UI) openForm(serviceID int) {
	svc, err := u.state.ServiceByID(serviceID)
	if err != nil {
		u.showNotFound()
		return
	}
	u.state.Nav.PushService(app.ScreenBookingForm, serviceID)

	errLine := tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)

	form := tview.NewForm().
		AddInputField("Date", "", 30, nil, nil).
		AddInputField("Time", "", 30, nil, nil).
		AddInputField("Notes", "", 40, nil, nil)
	form.AddButton("Confirm Booking", func() {
		date := form.GetFormItemByLabel("Date").(*tview.InputField).GetText()
		timeOfDay := form.GetFormItemByLabel("Time").(*tview.InputField).GetText()
		notes := form.GetFormItemByLabel("Notes").(*tview.InputField).GetText()
		if _, err := u.state.SubmitBooking(serviceID, date, timeOfDay, notes); err != nil {
			errLine.SetText("[red]" + err.Error() + "[-]")
			return
		}
		// Success routes to the bookings tab; drop the pushed pages.
		u.pages.RemovePage(pageForm)
		u.pages.RemovePage(pageDetails)
		u.showMain()
	})
	form.AddButton("Back", func() {
		u.goBack(pageForm)
	})
	form.SetBorder(true).SetTitle(" Book Service — " + svc.Name + " ")
	form.SetCancelFunc(func() {
		u.goBack(pageForm)
	})

	inner := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(form, 11, 0, true).
		AddItem(errLine, 1, 0, false)
	u.pages.AddPage(pageForm, center(58, 12, inner), true, true)
	u.app.SetFocus(form)
}

// --- Not-found screen ---

// showNotFound renders the dead-end state for an unresolvable service id.
// Going back is the only way out.
func (u *UI) showNotFound() {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText("\n[red]Service not found![-]\n\nPress Esc to go back")
	tv.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyEnter {
			u.pages.RemovePage(pageNotFound)
			u.app.SetFocus(u.activeList())
			return nil
		}
		return nil
	})
	u.pages.AddPage(pageNotFound, center(40, 6, wrapWithRules(tv)), true, true)
	u.app.SetFocus(tv)
}

// goBack pops one screen off the nav stack and removes its page.
func (u *UI) goBack(page string) {
	u.state.Nav.Back()
	u.pages.RemovePage(page)
	switch u.state.Nav.Current().Screen {
	case app.ScreenServiceDetails:
		u.pages.SwitchToPage(pageDetails)
	default:
		u.showMain()
	}
}

func (u *UI) savePrefs() {
	_ = store.SavePreferences(store.Preferences{
		Email:       u.state.Email,
		LastTab:     string(u.state.Nav.ActiveTab),
		SearchQuery: u.state.SearchQuery,
	})
}

// --- Generic helpers ---

// center returns a centered primitive with a fixed size.
func center(w, h int, p tview.Primitive) tview.Primitive {
	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(tview.NewBox(), 0, 1, false). // top spacer
		AddItem(tview.NewFlex().
			AddItem(tview.NewBox(), 0, 1, false). // left spacer
			AddItem(p, w, 0, true).               // content with fixed width
			AddItem(tview.NewBox(), 0, 1, false), // right spacer
							h, 0, true). // middle row with fixed height
		AddItem(tview.NewBox(), 0, 1, false) // bottom spacer
}

func moveDown(l *tview.List) {
	idx := l.GetCurrentItem()
	if idx < l.GetItemCount()-1 {
		l.SetCurrentItem(idx + 1)
	}
}

func moveUp(l *tview.List) {
	idx := l.GetCurrentItem()
	if idx > 0 {
		l.SetCurrentItem(idx - 1)
	}
}

// styleInputField applies consistent styling to input fields
func styleInputField(f *tview.InputField) {
	f.SetBackgroundColor(tcell.ColorDefault)
	f.SetFieldBackgroundColor(tcell.ColorDefault)
	f.SetBorderAttributes(tcell.AttrNone)
}

// wrapWithRules surrounds a primitive with a simple top and bottom horizontal rule.
func wrapWithRules(p tview.Primitive) tview.Primitive {
	top := tview.NewTextView().SetDynamicColors(true)
	bottom := tview.NewTextView().SetDynamicColors(true)
	line := "[green]" + strings.Repeat("─", 200)
	top.SetText(line)
	bottom.SetText(line)
	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(top, 1, 0, false).
		AddItem(p, 0, 1, true).
		AddItem(bottom, 1, 0, false)
}

// pad adds horizontal and vertical padding around a primitive while letting it fill remaining space.
func pad(p tview.Primitive, hpad, vpad int) tview.Primitive {
	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(tview.NewBox(), vpad, 0, false).
		AddItem(tview.NewFlex().
			AddItem(tview.NewBox(), hpad, 0, false).
			AddItem(p, 0, 1, true).
			AddItem(tview.NewBox(), hpad, 0, false),
			0, 1, true).
		AddItem(tview.NewBox(), vpad, 0, false)
}
