package store

import (
	"github.com/Aastech07/Servicebookingapp/internal/model"
)

// Store defines persistence operations for the booking collection.
type Store interface {
	List() ([]model.Booking, error)
	Create(b model.Booking) error
	Delete(id string) error
}
