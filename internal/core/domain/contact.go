package domain

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	ContactInfo   []ContactInfo `json:"contactInfo"`
	OfficeDetails OfficeDetails `json:"officeDetails"`
	SocialLinks   []ContactLink `json:"socialLinks"`
}

type ContactInfo struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Info      string    `json:"info"`
	SubInfo   string    `json:"subInfo"`
	Icon      string    `json:"icon"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactLink struct {
	ID        uuid.UUID `json:"id"`
	Platform  string    `json:"platform"`
	URL       string    `json:"url"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

type OfficeDetails struct {
	Address     string `json:"address"`
	Description string `json:"description"`
	MapURL      string `json:"mapUrl"`
}

var (
	ContactInfoTypes = []string{"email", "phone", "address", "hours", "social"}
	ContactInfoIcons = []string{"Mail", "Phone", "MapPin", "Clock", "Globe", "Building"}
)
