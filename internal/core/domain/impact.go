package domain

import (
	"time"

	"github.com/google/uuid"
)

type Impact struct {
	MainHeading         string           `json:"mainHeading"`
	MainDescription     string           `json:"mainDescription"`
	OverviewDescription string           `json:"overviewDescription"`
	ImpactStats         []ImpactStat     `json:"impactStats"`
	SuccessStories      []SuccessStory   `json:"successStories"`
	KeyAchievements     []KeyAchievement `json:"keyAchievements"`
	ClientTestimonials  []Testimonial    `json:"clientTestimonials"`
	ImpactAreas         []ImpactArea     `json:"impactAreas"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}

type ImpactStat struct {
	ID          uuid.UUID `json:"id"`
	Icon        string    `json:"icon"`
	Number      string    `json:"number"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
}

type SuccessStory struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Result      string    `json:"result"`
	Year        string    `json:"year"`
	Description string    `json:"description"`
	Metrics     []string  `json:"metrics"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}

type KeyAchievement struct {
	ID           uuid.UUID `json:"id"`
	Category     string    `json:"category"`
	Achievements []string  `json:"achievements"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Testimonial struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Quote     string    `json:"quote"`
	Rating    int       `json:"rating"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

type ImpactArea struct {
	ID          uuid.UUID `json:"id"`
	Icon        string    `json:"icon"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Stats       string    `json:"stats"`
	CreatedAt   time.Time `json:"createdAt"`
}

var (
	ImpactStatIcons = []string{"Trophy", "Users", "Target", "Award", "BarChart3", "MapPin", "Globe", "Shield", "Zap", "TrendingUp"}
	ImpactAreaIcons = []string{"Globe", "Users", "Shield", "Zap", "Target", "Award"}
)
