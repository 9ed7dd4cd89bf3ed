package domain

import (
	"time"

	"github.com/google/uuid"
)

type About struct {
	Header         AboutHeader     `json:"header"`
	Mission        AboutMission    `json:"mission"`
	Features       []string        `json:"features"`
	CarouselImages []CarouselImage `json:"carouselImages"`
	Stats          []AboutStat     `json:"stats"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type AboutHeader struct {
	Subtitle    string `json:"subtitle"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type AboutMission struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	SubsectionTitle string `json:"subsectionTitle"`
}

type CarouselImage struct {
	ID          uuid.UUID `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AboutStat struct {
	ID     uuid.UUID `json:"id"`
	Number string    `json:"number"`
	Label  string    `json:"label"`
}
