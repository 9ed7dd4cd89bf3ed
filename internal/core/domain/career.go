package domain

import (
	"time"

	"github.com/google/uuid"
)

type Career struct {
	ExpertiseAreas []ExpertiseArea `json:"expertiseAreas"`
	CareerPaths    []CareerPath    `json:"careerPaths"`
	Benefits       []Benefit       `json:"benefits"`
}

type ExpertiseArea struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Details     []string  `json:"details"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CareerPath struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Level       string    `json:"level"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	Growth      string    `json:"growth"`
	Icon        string    `json:"icon"`
	Shape       string    `json:"shape"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Benefit struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Accent      string    `json:"accent"`
	CreatedAt   time.Time `json:"createdAt"`
}

var (
	CareerPathLevels = []string{"Entry to Mid-Level", "Mid to Senior Level", "Senior Level", "Specialized Role"}
	CareerPathShapes = []string{"hexagon", "diamond", "circle", "octagon"}
	BenefitAccents   = []string{"orange", "blue", "purple", "green", "red", "cyan"}
)
