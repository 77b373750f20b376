package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/Aastech07/Servicebookingapp/internal/app"
	"github.com/Aastech07/Servicebookingapp/internal/catalog"
	"github.com/Aastech07/Servicebookingapp/internal/store"
)

// runCLI parses CLI subcommands. Returns (handled, exitCode).
func runCLI(args []string) (bool, int) {
	if len(args) == 0 {
		return false, 0
	}
	switch args[0] {
	case "help", "-h", "--help":
		printHelp()
		return true, 0
	case "services":
		return true, cliServices(args[1:])
	case "bookings":
		return true, cliBookings(args[1:])
	case "book":
		return true, cliBook(args[1:])
	case "cancel":
		return true, cliCancel(args[1:])
	default:
		// Not a CLI subcommand; fall back to TUI
		return false, 0
	}
}

func newApp(dataDir string) (*app.App, error) {
	var st *store.FSStore
	var err error
	if dataDir != "" {
		st, err = store.NewFSStore(dataDir)
	} else {
		st, err = store.NewDefaultFSStore()
	}
	if err != nil {
		return nil, err
	}
	return app.New(catalog.Default(), st), nil
}

func cliServices(args []string) int {
	fs := flag.NewFlagSet("services", flag.ContinueOnError)
	query := fs.String("q", "", "filter services by name")
	jsonOut := fs.Bool("json", false, "output JSON")
	dataDir := fs.String("data-dir", "", "override data directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	a, err := newApp(*dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	vis := a.SearchServices(*query)
	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(vis)
		return 0
	}
	for _, s := range vis {
		fmt.Printf("%d. %-16s %-8s ₹%.0f\n", s.ID, s.Name, s.Duration, s.Price)
	}
	fmt.Println(a.ServiceCountLabel())
	return 0
}

func cliBookings(args []string) int {
	fs := flag.NewFlagSet("bookings", flag.ContinueOnError)
	jsonOut := fs.Bool("json", false, "output JSON")
	dataDir := fs.String("data-dir", "", "override data directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	a, err := newApp(*dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := a.LoadBookings(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(a.BookingItems)
		return 0
	}
	for _, b := range a.BookingItems {
		line := fmt.Sprintf("%s  %s %s  %s", b.ID, b.Date, b.Time, b.ServiceName)
		if b.Notes != "" {
			line += "  (" + b.Notes + ")"
		}
		fmt.Println(line)
	}
	fmt.Println(a.BookingCountLabel())
	return 0
}

func cliBook(args []string) int {
	fs := flag.NewFlagSet("book", flag.ContinueOnError)
	serviceID := fs.Int("service", 0, "catalog service id")
	date := fs.String("date", "", "appointment date")
	timeOfDay := fs.String("time", "", "appointment time")
	notes := fs.String("notes", "", "optional notes")
	dataDir := fs.String("data-dir", "", "override data directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	a, err := newApp(*dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	b, err := a.SubmitBooking(*serviceID, *date, *timeOfDay, *notes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("Booked %s on %s at %s (id %s)\n", b.ServiceName, b.Date, b.Time, b.ID)
	return 0
}

func cliCancel(args []string) int {
	fs := flag.NewFlagSet("cancel", flag.ContinueOnError)
	id := fs.String("id", "", "booking id")
	dataDir := fs.String("data-dir", "", "override data directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *id == "" {
		fmt.Fprintln(os.Stderr, "cancel requires -id")
		return 2
	}

	a, err := newApp(*dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := a.DeleteBooking(*id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println(a.BookingCountLabel())
	return 0
}

func printHelp() {
	fmt.Println(`svcbook — service booking app

Usage:
  svcbook                  launch the interactive TUI
  svcbook services [-q query] [-json]
  svcbook bookings [-json]
  svcbook book -service N -date D -time T [-notes S]
  svcbook cancel -id ID

Flags common to all subcommands:
  -data-dir DIR   override the data directory (or set SVCBOOK_DATA_DIR)`)
}
