package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service is one of the consultancy's offerings shown on the site
// (AI solutions, XR development, multimedia production).
type Service struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Slug        string         `gorm:"type:varchar(100);uniqueIndex;not null"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	VideoURL    string         `gorm:"type:text"`
	Features    datatypes.JSON `gorm:"type:jsonb"` // JSON array of feature strings
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Service) TableName() string {
	return "services"
}

type PortfolioItem struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Category    string         `gorm:"type:varchar(100);not null"`
	Description string         `gorm:"type:text"`
	ImageURL    string         `gorm:"type:text"`
	Results     datatypes.JSON `gorm:"type:jsonb"` // JSON array of {metric, value}
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (PortfolioItem) TableName() string {
	return "portfolio_items"
}

type BlogPost struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Slug        string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Excerpt     string         `gorm:"type:text"`
	Content     string         `gorm:"type:text"`
	Author      string         `gorm:"type:varchar(255)"`
	ImageURL    string         `gorm:"type:text"`
	PublishedAt time.Time      `gorm:"not null"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
