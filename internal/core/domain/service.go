package domain

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Features    []string  `json:"features"`
	Icon        string    `json:"icon"`
	Active      bool      `json:"active"`
	Position    int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ServicesPage is the aggregate served to the services page: the service
// cards plus the page header and the call-to-action block.
type ServicesPage struct {
	Services      []Service      `json:"services"`
	HeaderContent ServicesHeader `json:"headerContent"`
	CtaSection    ServicesCTA    `json:"ctaSection"`
}

type ServicesHeader struct {
	Subtitle    string `json:"subtitle"`
	MainTitle   string `json:"mainTitle"`
	Description string `json:"description"`
}

type ServicesCTA struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ButtonText  string `json:"buttonText"`
}
