package dto

import "time"

type ServiceRequest struct {
	Slug        string   `json:"slug" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	VideoURL    string   `json:"video_url"`
	Features    []string `json:"features"`
}

type ServiceResponse struct {
	Id          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	VideoURL    string   `json:"video_url"`
	Features    []string `json:"features"`
}

type PortfolioResultItem struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
}

type PortfolioItemRequest struct {
	Title       string                `json:"title" validate:"required"`
	Category    string                `json:"category" validate:"required"`
	Description string                `json:"description" validate:"required"`
	ImageURL    string                `json:"image_url"`
	Results     []PortfolioResultItem `json:"results"`
}

type PortfolioItemResponse struct {
	Id          string                `json:"id"`
	Title       string                `json:"title"`
	Category    string                `json:"category"`
	Description string                `json:"description"`
	ImageURL    string                `json:"image_url"`
	Results     []PortfolioResultItem `json:"results"`
}

type BlogPostRequest struct {
	Title       string     `json:"title" validate:"required"`
	Slug        string     `json:"slug" validate:"required"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content" validate:"required"`
	Author      string     `json:"author" validate:"required"`
	ImageURL    string     `json:"image_url"`
	PublishedAt *time.Time `json:"published_at"`
}

type BlogPostResponse struct {
	Id          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	Author      string     `json:"author"`
	ImageURL    string     `json:"image_url"`
	PublishedAt *time.Time `json:"published_at"`
}
