package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Speaker struct {
	bun.BaseModel `bun:"table:speakers"`

	ID           string    `bun:"id,pk" json:"id"`
	Name         string    `bun:"name,notnull" json:"name"`
	Title        string    `bun:"title,notnull" json:"title"`
	Organization string    `bun:"organization,notnull" json:"organization"`
	Bio          string    `bun:"bio,notnull" json:"bio"`
	Expertise    []string  `bun:"expertise,array" json:"expertise"`
	ImageURL     string    `bun:"image_url,nullzero" json:"image_url,omitempty"`
	LinkedinURL  string    `bun:"linkedin_url,nullzero" json:"linkedin_url,omitempty"`
	TwitterURL   string    `bun:"twitter_url,nullzero" json:"twitter_url,omitempty"`
	IsFeatured   bool      `bun:"is_featured,notnull,default:false" json:"is_featured"`
	CreatedAt    time.Time `bun:"created_at,notnull" json:"created_at"`
}

type SpeakerCreate struct {
	Name         string   `json:"name" validate:"required"`
	Title        string   `json:"title" validate:"required"`
	Organization string   `json:"organization" validate:"required"`
	Bio          string   `json:"bio" validate:"required"`
	Expertise    []string `json:"expertise" validate:"required"`
	ImageURL     string   `json:"image_url"`
	LinkedinURL  string   `json:"linkedin_url"`
	TwitterURL   string   `json:"twitter_url"`
	IsFeatured   bool     `json:"is_featured"`
}
