package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"oguso-digital-be/internal/entity"
	"oguso-digital-be/internal/model"
	"oguso-digital-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeds the admin account and the marketing content the site ships
// with. Safe to run repeatedly: rows are matched on their natural keys.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedAdmin(db)
	seedServices(db)
	seedPortfolio(db)
	seedBlogPosts(db)

	log.Println("Seed completed.")
}

func seedAdmin(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("Skip admin seed: SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD not set")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: failed to hash admin password: %v", err)
	}
	hashStr := string(hash)
	now := time.Now()

	admin := model.User{
		Id:              uuid.New(),
		Email:           email,
		PasswordHash:    &hashStr,
		FullName:        "Site Admin",
		Role:            entity.UserRoleAdmin,
		Status:          entity.UserStatusActive,
		EmailVerified:   true,
		EmailVerifiedAt: &now,
	}

	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&admin).Error
	if err != nil {
		log.Fatalf("Error: failed to seed admin: %v", err)
	}
	log.Printf("Seeded admin user %s", email)
}

func seedServices(db *gorm.DB) {
	services := []model.Service{
		{
			Id:          uuid.New(),
			Slug:        "ai",
			Title:       "AI Solutions",
			Description: "Harness the power of AI to automate processes, gain insights, and create personalized experiences for your customers.",
			VideoURL:    "https://www.youtube.com/embed/5p248yoa3oE",
			Features: mustJSON([]string{
				"Predictive analytics and data modeling",
				"AI-powered customer experiences",
				"Process automation and optimization",
				"Natural language processing solutions",
				"Computer vision implementation",
			}),
		},
		{
			Id:          uuid.New(),
			Slug:        "xr",
			Title:       "XR Development",
			Description: "Create immersive experiences that blend digital and physical worlds using AR, VR, and MR technologies.",
			VideoURL:    "https://www.youtube.com/embed/2JgEzN7LYVo",
			Features: mustJSON([]string{
				"Virtual showrooms and product visualizations",
				"Augmented reality applications",
				"Virtual reality training solutions",
				"Mixed reality workplace innovations",
				"Immersive brand experiences",
			}),
		},
		{
			Id:          uuid.New(),
			Slug:        "multimedia",
			Title:       "Multimedia Production",
			Description: "Engage your audience with compelling multimedia content designed for the digital age.",
			VideoURL:    "https://www.youtube.com/embed/GtL1huin9EE",
			Features: mustJSON([]string{
				"Interactive storytelling experiences",
				"Video production and animation",
				"3D modeling and visualization",
				"Digital marketing assets",
				"Social media content strategies",
			}),
		},
	}

	for _, svc := range services {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&svc).Error
		if err != nil {
			log.Fatalf("Error: failed to seed service %s: %v", svc.Slug, err)
		}
	}
	log.Printf("Seeded %d services", len(services))
}

func seedPortfolio(db *gorm.DB) {
	var count int64
	db.Model(&model.PortfolioItem{}).Count(&count)
	if count > 0 {
		log.Println("Skip portfolio seed: rows already present")
		return
	}

	items := []model.PortfolioItem{
		{
			Id:          uuid.New(),
			Title:       "Retail AI Personalization Engine",
			Category:    "AI Solutions",
			Description: "A recommendation engine that tailors storefront content per visitor in real time.",
			Results: mustJSON([]entity.PortfolioResult{
				{Metric: "Conversion uplift", Value: "+32%"},
				{Metric: "Time to recommendation", Value: "under 50ms"},
			}),
		},
		{
			Id:          uuid.New(),
			Title:       "VR Safety Training Suite",
			Category:    "XR Development",
			Description: "Immersive training modules that replaced classroom sessions for factory floor staff.",
			Results: mustJSON([]entity.PortfolioResult{
				{Metric: "Training time", Value: "-40%"},
				{Metric: "Incident rate", Value: "-18%"},
			}),
		},
	}

	for _, item := range items {
		if err := db.Create(&item).Error; err != nil {
			log.Fatalf("Error: failed to seed portfolio item %s: %v", item.Title, err)
		}
	}
	log.Printf("Seeded %d portfolio items", len(items))
}

func seedBlogPosts(db *gorm.DB) {
	posts := []model.BlogPost{
		{
			Id:          uuid.New(),
			Title:       "Why Digital Transformation Starts With Your Data",
			Slug:        "digital-transformation-starts-with-data",
			Excerpt:     "Before adding AI to anything, get your data house in order.",
			Content:     "Most transformation projects fail before a single model is trained. The culprit is rarely the technology...",
			Author:      "Alexander Oguso",
			PublishedAt: time.Now(),
		},
		{
			Id:          uuid.New(),
			Title:       "XR Beyond the Hype: Three Use Cases That Pay For Themselves",
			Slug:        "xr-beyond-the-hype",
			Excerpt:     "Training, visualization and remote assistance are quietly delivering ROI.",
			Content:     "Strip away the headset demos and XR earns its keep in three places...",
			Author:      "Alexander Oguso",
			PublishedAt: time.Now(),
		},
	}

	for _, post := range posts {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&post).Error
		if err != nil {
			log.Fatalf("Error: failed to seed blog post %s: %v", post.Slug, err)
		}
	}
	log.Printf("Seeded %d blog posts", len(posts))
}

func mustJSON(v interface{}) datatypes.JSON {
	data, err := json.Marshal(v)
	if err != nil {
		log.Fatalf("Error: failed to marshal seed JSON: %v", err)
	}
	return datatypes.JSON(data)
}
