package catalog

import (
	"strings"

	"github.com/Aastech07/Servicebookingapp/internal/model"
)

// Catalog is the fixed, ordered list of offered services. It is loaded
// once at startup and never mutated.
type Catalog struct {
	services []model.Service
}

// New builds a catalog over the given services, preserving their order.
func New(services []model.Service) *Catalog {
	return &Catalog{services: services}
}

// Default returns the built-in service catalog.
func Default() *Catalog {
	return New(defaultServices)
}

// All returns every service in catalog order.
func (c *Catalog) All() []model.Service {
	out := make([]model.Service, len(c.services))
	copy(out, c.services)
	return out
}

// Find resolves a service by id.
func (c *Catalog) Find(id int) (model.Service, bool) {
	for _, s := range c.services {
		if s.ID == id {
			return s, true
		}
	}
	return model.Service{}, false
}

// Filter returns services whose name contains the query, compared
// case-insensitively. A query that trims to empty returns the full
// catalog. Order always matches catalog order.
func (c *Catalog) Filter(query string) []model.Service {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.All()
	}
	out := make([]model.Service, 0, len(c.services))
	for _, s := range c.services {
		if strings.Contains(strings.ToLower(s.Name), q) {
			out = append(out, s)
		}
	}
	return out
}

var defaultServices = []model.Service{
	{ID: 1, Name: "Haircut", Duration: "30 min", Price: 200, Description: "Classic cut and styling with a finishing blow-dry."},
	{ID: 2, Name: "Manicure", Duration: "45 min", Price: 350, Description: "Nail shaping, cuticle care and polish."},
	{ID: 3, Name: "Pedicure", Duration: "60 min", Price: 450, Description: "Foot soak, exfoliation and polish."},
	{ID: 4, Name: "Facial", Duration: "50 min", Price: 600, Description: "Deep-cleansing facial with massage and mask."},
	{ID: 5, Name: "Hair Spa", Duration: "60 min", Price: 800, Description: "Conditioning treatment for dry and damaged hair."},
	{ID: 6, Name: "Beard Trim", Duration: "20 min", Price: 150, Description: "Shape-up and hot towel finish."},
	{ID: 7, Name: "Hair Coloring", Duration: "90 min", Price: 1200, Description: "Full color or highlights, ammonia-free options."},
	{ID: 8, Name: "Body Massage", Duration: "60 min", Price: 900, Description: "Relaxing full-body massage with aroma oils."},
}
