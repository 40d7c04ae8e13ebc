package memory

import (
	"time"

	"oguso-digital-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SettingsCache keeps recently read ai_settings rows in memory. Settings are
// loaded before every chat turn, so this saves a query per turn; entries are
// dropped on save so a settings-form write is visible on the next turn.
type SettingsCache struct {
	cache *cache.Cache
}

func NewSettingsCache() *SettingsCache {
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &SettingsCache{
		cache: c,
	}
}

func (s *SettingsCache) Get(userId uuid.UUID) (*entity.AiSettings, bool) {
	if x, found := s.cache.Get(userId.String()); found {
		return x.(*entity.AiSettings), true
	}
	return nil, false
}

func (s *SettingsCache) Set(settings *entity.AiSettings) {
	s.cache.Set(settings.UserId.String(), settings, cache.DefaultExpiration)
}

func (s *SettingsCache) Invalidate(userId uuid.UUID) {
	s.cache.Delete(userId.String())
}
