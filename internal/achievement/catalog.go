// Package achievement loads the milestone catalog and evaluates it against progress.
package achievement

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/osse101/foundry90/internal/config"
	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/validation"
)

// ErrInvalidCatalog is wrapped by every catalog validation failure
var ErrInvalidCatalog = errors.New("invalid achievement catalog")

// File is the on-disk layout of the catalog
type File struct {
	Version      string               `json:"version"`
	Description  string               `json:"description"`
	Achievements []domain.Achievement `json:"achievements"`
}

// Catalog is an ordered, immutable set of achievements
type Catalog struct {
	entries []domain.Achievement
	byKey   map[string]domain.Achievement
}

// Load reads a catalog file, validating it against the achievements schema
func Load(path string) (*Catalog, error) {
	resolved, err := validation.ResolveProjectPath(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	if err := validation.NewSchemaValidator().ValidateBytes(data, config.ConfigPathAchievementsSchema); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidCatalog, path, err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}
	return NewCatalog(file.Achievements)
}

// NewCatalog builds a catalog, rejecting duplicate keys and unusable rules
func NewCatalog(entries []domain.Achievement) (*Catalog, error) {
	c := &Catalog{
		entries: make([]domain.Achievement, 0, len(entries)),
		byKey:   make(map[string]domain.Achievement, len(entries)),
	}
	for i, a := range entries {
		if a.Key == "" {
			return nil, fmt.Errorf("%w: "+ErrMsgEmptyKey, ErrInvalidCatalog, i)
		}
		if _, dup := c.byKey[a.Key]; dup {
			return nil, fmt.Errorf("%w: "+ErrMsgDuplicateKey, ErrInvalidCatalog, a.Key)
		}
		if !knownMetric(a.Metric) {
			return nil, fmt.Errorf("%w: "+ErrMsgUnknownMetric, ErrInvalidCatalog, a.Key, a.Metric)
		}
		if a.Threshold <= 0 {
			return nil, fmt.Errorf("%w: "+ErrMsgBadThreshold, ErrInvalidCatalog, a.Key)
		}
		c.entries = append(c.entries, a)
		c.byKey[a.Key] = a
	}
	return c, nil
}

// Empty returns a catalog with no achievements
func Empty() *Catalog {
	c, _ := NewCatalog(nil)
	return c
}

// All returns the catalog entries in file order
func (c *Catalog) All() []domain.Achievement {
	out := make([]domain.Achievement, len(c.entries))
	copy(out, c.entries)
	return out
}

// Get looks up an achievement by key
func (c *Catalog) Get(key string) (domain.Achievement, bool) {
	a, ok := c.byKey[key]
	return a, ok
}

// Len returns the number of achievements
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Evaluate returns the achievements p satisfies that are not yet in unlocked,
// stamped with now.
func (c *Catalog) Evaluate(p *domain.Progress, unlocked []domain.UserAchievement, now time.Time) []domain.UserAchievement {
	have := make(map[string]struct{}, len(unlocked))
	for _, ua := range unlocked {
		have[ua.AchievementKey] = struct{}{}
	}

	var fresh []domain.UserAchievement
	for _, a := range c.entries {
		if _, ok := have[a.Key]; ok {
			continue
		}
		if a.SatisfiedBy(p) {
			fresh = append(fresh, domain.UserAchievement{
				UserID:         p.UserID,
				AchievementKey: a.Key,
				UnlockedAt:     now,
			})
		}
	}
	return fresh
}

// Statuses annotates the catalog with one user's unlock state
func (c *Catalog) Statuses(unlocked []domain.UserAchievement) []domain.AchievementStatus {
	when := make(map[string]time.Time, len(unlocked))
	for _, ua := range unlocked {
		when[ua.AchievementKey] = ua.UnlockedAt
	}

	out := make([]domain.AchievementStatus, 0, len(c.entries))
	for _, a := range c.entries {
		status := domain.AchievementStatus{Achievement: a}
		if at, ok := when[a.Key]; ok {
			at := at
			status.Unlocked = true
			status.UnlockedAt = &at
		}
		out = append(out, status)
	}
	return out
}

func knownMetric(m domain.AchievementMetric) bool {
	switch m {
	case domain.MetricStreak, domain.MetricBestStreak, domain.MetricTotalCompletedDays, domain.MetricCurrentDay:
		return true
	default:
		return false
	}
}
