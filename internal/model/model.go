package model

// Service is a catalog entry. The catalog is fixed at startup; services
// are never created or changed at runtime.
type Service struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Duration    string  `json:"duration"` // display label, e.g. "30 min"
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

// Booking is a user-created appointment against one catalog service.
// ServiceName is copied from the service at creation time and never
// re-resolved afterwards.
type Booking struct {
	ID          string `json:"id"`
	ServiceID   int    `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Notes       string `json:"notes,omitempty"`
}
