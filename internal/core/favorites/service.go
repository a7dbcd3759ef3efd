// Package favorites persists user favorites in a local sqlite database.
// Recipes are stored as JSON blobs; a favorite expires 15 days after it
// was (re-)added.
package favorites

import (
	"encoding/json"
	"fmt"
	"time"

	"recipe-recommender/internal/pkg/common"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const retention = 15 * 24 * time.Hour

// Favorite is the stored row. The full recipe travels as a JSON string
// so schema changes in the recipe shape never need a migration.
type Favorite struct {
	ID        string `gorm:"primaryKey"`
	Recipe    string `gorm:"not null"`
	CreatedAt time.Time
}

// TableName keeps the original table name.
func (Favorite) TableName() string {
	return "favorites"
}

// Service is the favorites store.
type Service struct {
	db  *gorm.DB
	now func() time.Time
}

// OpenDatabase opens (creating if needed) the sqlite database at path
// and runs the migration.
func OpenDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.AutoMigrate(&Favorite{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// NewService creates the favorites service.
func NewService(db *gorm.DB) *Service {
	return &Service{
		db:  db,
		now: time.Now,
	}
}

// List returns all favorites added within the retention window. Rows
// that no longer decode to a valid recipe are skipped.
func (s *Service) List() ([]common.RecipeSuggestion, error) {
	var rows []Favorite
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	cutoff := s.now().Add(-retention)
	out := make([]common.RecipeSuggestion, 0, len(rows))
	for _, row := range rows {
		if row.CreatedAt.Before(cutoff) {
			continue
		}
		var recipe common.RecipeSuggestion
		if err := json.Unmarshal([]byte(row.Recipe), &recipe); err != nil {
			common.LogWarn("skipping unreadable favorite",
				zap.String("id", row.ID),
				zap.Error(err),
			)
			continue
		}
		if recipe.ID == "" || recipe.Title == "" {
			continue
		}
		out = append(out, recipe)
	}
	return out, nil
}

// Add stores a favorite. Re-adding an existing id replaces the stored
// recipe and refreshes its timestamp.
func (s *Service) Add(recipe common.RecipeSuggestion) (common.RecipeSuggestion, error) {
	blob, err := json.Marshal(recipe)
	if err != nil {
		return common.RecipeSuggestion{}, fmt.Errorf("failed to encode recipe: %w", err)
	}

	row := Favorite{
		ID:        recipe.ID,
		Recipe:    string(blob),
		CreatedAt: s.now(),
	}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&row).Error; err != nil {
		return common.RecipeSuggestion{}, fmt.Errorf("failed to save favorite: %w", err)
	}

	return recipe, nil
}

// Remove deletes a favorite by id. Removing a missing id is not an
// error.
func (s *Service) Remove(id string) error {
	if err := s.db.Delete(&Favorite{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// CleanupExpired deletes rows past the retention window and returns the
// number removed. List filters read-side; this keeps the table itself
// from growing without bound.
func (s *Service) CleanupExpired() (int64, error) {
	res := s.db.Delete(&Favorite{}, "created_at < ?", s.now().Add(-retention))
	if res.Error != nil {
		return 0, fmt.Errorf("failed to clean up favorites: %w", res.Error)
	}
	return res.RowsAffected, nil
}
