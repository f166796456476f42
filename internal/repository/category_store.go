package repository

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"habit-tracker/internal/diff"
	"habit-tracker/internal/model"
)

// CategoryStore manages categories and their live, title-sorted projection.
// Title uniqueness is enforced here, case-insensitively, so the invariant
// holds no matter which caller forgets to check first.
type CategoryStore struct {
	db   *DB
	log  *zap.Logger
	live *categoryLiveQuery
}

func NewCategoryStore(db *DB, lg *zap.Logger) *CategoryStore {
	s := &CategoryStore{db: db, log: lg}
	s.live = newCategoryLiveQuery(s)
	db.register(s.live)
	return s
}

// Add creates a category with the trimmed title.
func (s *CategoryStore) Add(title string) (*model.Category, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	exists, err := s.Exists(title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateCategory
	}

	category := model.Category{Title: title}
	err = s.db.Commit(func(tx *gorm.DB) error {
		if err := tx.Create(&category).Error; err != nil {
			return fmt.Errorf("create category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Exists reports whether a category with this exact title is stored,
// ignoring case.
func (s *CategoryStore) Exists(title string) (bool, error) {
	var count int64
	if err := s.db.Session().Model(&model.Category{}).
		Where("LOWER(title) = LOWER(?)", strings.TrimSpace(title)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check category title: %w", err)
	}
	return count > 0, nil
}

// ByTitle looks a category up by exact, case-insensitive title. Returns nil
// without error when there is no match.
func (s *CategoryStore) ByTitle(title string) (*model.Category, error) {
	var category model.Category
	err := s.db.Session().Where("LOWER(title) = LOWER(?)", strings.TrimSpace(title)).First(&category).Error
	switch {
	case err == nil:
		return &category, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, fmt.Errorf("find category: %w", err)
	}
}

// List returns all categories sorted ascending by title, each with its
// trackers sorted by id. The total order is what the live query diffs
// against, so it must stay stable.
func (s *CategoryStore) List() ([]model.Category, error) {
	var categories []model.Category
	if err := s.db.Session().
		Preload("Trackers", func(tx *gorm.DB) *gorm.DB { return tx.Order("trackers.id ASC") }).
		Order("title ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Rename changes the category title, subject to the same validation as Add.
func (s *CategoryStore) Rename(category model.Category, newTitle string) error {
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return ErrEmptyTitle
	}
	var count int64
	if err := s.db.Session().Model(&model.Category{}).
		Where("LOWER(title) = LOWER(?) AND id <> ?", newTitle, category.ID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("check category title: %w", err)
	}
	if count > 0 {
		return ErrDuplicateCategory
	}
	if err := s.requireExists(category.ID); err != nil {
		return err
	}

	return s.db.Commit(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Category{}).Where("id = ?", category.ID).
			Update("title", newTitle).Error; err != nil {
			return fmt.Errorf("rename category: %w", err)
		}
		return nil
	})
}

// requireExists distinguishes a missing category from a storage fault before
// entering the commit cycle.
func (s *CategoryStore) requireExists(id uint) error {
	var count int64
	if err := s.db.Session().Model(&model.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("check category: %w", err)
	}
	if count == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Delete removes the category together with its trackers and their records,
// in one transaction. Cascade was chosen over reject: the original flow
// deletes whole groups, and an orphaned tracker would be unreachable
// through every query this layer offers.
func (s *CategoryStore) Delete(category model.Category) error {
	if err := s.requireExists(category.ID); err != nil {
		return err
	}
	return s.db.Commit(func(tx *gorm.DB) error {
		var trackerIDs []int32
		if err := tx.Model(&model.Tracker{}).Where("category_id = ?", category.ID).
			Pluck("id", &trackerIDs).Error; err != nil {
			return fmt.Errorf("list category trackers: %w", err)
		}
		if len(trackerIDs) > 0 {
			if err := tx.Where("tracker_id IN ?", trackerIDs).Delete(&model.Record{}).Error; err != nil {
				return fmt.Errorf("delete tracker records: %w", err)
			}
			if err := tx.Where("category_id = ?", category.ID).Delete(&model.Tracker{}).Error; err != nil {
				return fmt.Errorf("delete trackers: %w", err)
			}
		}
		if err := tx.Delete(&model.Category{}, category.ID).Error; err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		return nil
	})
}

// Subscribe registers fn for the diff batches of the title-sorted list.
// Batches arrive in commit order; a subscriber must apply each before the
// next one is valid.
func (s *CategoryStore) Subscribe(fn func([]diff.Change)) (cancel func()) {
	return s.live.subs.Subscribe(fn)
}
