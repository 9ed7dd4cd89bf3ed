package domain

import (
	"time"

	"github.com/google/uuid"
)

type Homepage struct {
	BrandName        string            `json:"brandName"`
	Tagline          string            `json:"tagline"`
	MainHeading      string            `json:"mainHeading"`
	Description      string            `json:"description"`
	CtaButton        string            `json:"ctaButton"`
	SocialLinks      SocialLinks       `json:"socialLinks"`
	BackgroundImages []BackgroundImage `json:"backgroundImages"`
	DisplaySettings  DisplaySettings   `json:"displaySettings"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

type SocialLinks struct {
	Linkedin string `json:"linkedin"`
	Twitter  string `json:"twitter"`
	Email    string `json:"email"`
}

type BackgroundImage struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	Alt       string    `json:"alt"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

type DisplaySettings struct {
	ImageRotationInterval    int  `json:"imageRotationInterval"`
	AnimationDuration        int  `json:"animationDuration"`
	EnableFloatingAnimations bool `json:"enableFloatingAnimations"`
	AutoRotateImages         bool `json:"autoRotateImages"`
	MaintenanceMode          bool `json:"maintenanceMode"`
}
