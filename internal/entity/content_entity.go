package entity

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	Id          uuid.UUID
	Slug        string
	Title       string
	Description string
	VideoURL    string
	Features    []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PortfolioResult is a single headline metric on a case study card.
type PortfolioResult struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
}

type PortfolioItem struct {
	Id          uuid.UUID
	Title       string
	Category    string
	Description string
	ImageURL    string
	Results     []PortfolioResult
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type BlogPost struct {
	Id          uuid.UUID
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	Author      string
	ImageURL    string
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ContactMessage struct {
	Id        uuid.UUID
	Name      string
	Email     string
	Company   string
	Message   string
	CreatedAt time.Time
}
