package main

import (
	"bookmark-manager-backend/internal/config"
	"bookmark-manager-backend/internal/database"
	"bookmark-manager-backend/internal/database/models"
	"bookmark-manager-backend/internal/pinyin"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TagData struct {
	Name      string `yaml:"name"`
	SortOrder int64  `yaml:"sort_order"`
}

type BookmarkData struct {
	Name      string   `yaml:"name"`
	URL       string   `yaml:"url"`
	Pinyin    string   `yaml:"pinyin,omitempty"`
	Icon      string   `yaml:"icon,omitempty"`
	IsPinned  bool     `yaml:"is_pinned"`
	SortOrder int64    `yaml:"sort_order"`
	TagNames  []string `yaml:"tags,omitempty"`
}

// File structures
type TagsFile struct {
	Tags []TagData `yaml:"tags"`
}

type BookmarksFile struct {
	Bookmarks []BookmarkData `yaml:"bookmarks"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files into the public collection
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	tags, err := loadTags(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tags: %w", err)
	}

	bookmarks, err := loadBookmarks(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load bookmarks: %w", err)
	}

	// Create tags first so bookmarks can reference them by name
	tagMap := make(map[string]*models.Tag)
	tagCreated := 0
	for _, tagData := range tags {
		tag, created, err := createTag(db, tagData)
		if err != nil {
			return fmt.Errorf("failed to create tag %s: %w", tagData.Name, err)
		}
		tagMap[tagData.Name] = tag
		if created {
			tagCreated++
		}
	}
	log.Printf("📋 Tags: %d created, %d total", tagCreated, len(tags))

	// Create bookmarks and their tag links
	bookmarkCreated := 0
	linksCreated := 0
	for _, bookmarkData := range bookmarks {
		bookmark, created, err := createBookmark(db, bookmarkData)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create bookmark %s: %v", bookmarkData.Name, err)
			continue // Continue with other bookmarks
		}
		if created {
			bookmarkCreated++
		}

		links, err := createBookmarkTags(db, bookmark, bookmarkData.TagNames, tagMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to link tags for bookmark %s: %v", bookmarkData.Name, err)
			continue
		}
		linksCreated += links
	}
	log.Printf("📋 Bookmarks: %d created, %d total", bookmarkCreated, len(bookmarks))
	log.Printf("📋 Bookmark-Tag links: %d created", linksCreated)

	return nil
}

func loadTags(dataDir string) ([]TagData, error) {
	var allTags []TagData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "tags") {
			var file TagsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTags = append(allTags, file.Tags...)
		}
		return nil
	})

	return allTags, err
}

func loadBookmarks(dataDir string) ([]BookmarkData, error) {
	var allBookmarks []BookmarkData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "bookmarks") {
			var file BookmarksFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allBookmarks = append(allBookmarks, file.Bookmarks...)
		}
		return nil
	})

	return allBookmarks, err
}

func createTag(db *gorm.DB, tagData TagData) (*models.Tag, bool, error) {
	var tag models.Tag
	if err := db.Where("name = ? AND user_id = 0", tagData.Name).First(&tag).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			tag = models.Tag{
				Name:      tagData.Name,
				SortOrder: tagData.SortOrder,
			}

			if err := db.Create(&tag).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create tag: %w", err)
			}
			return &tag, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query tag: %w", err)
		}
	}

	return &tag, false, nil // created = false (existing)
}

func createBookmark(db *gorm.DB, bookmarkData BookmarkData) (*models.Bookmark, bool, error) {
	var bookmark models.Bookmark
	if err := db.Where("name = ? AND user_id = 0", bookmarkData.Name).First(&bookmark).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			key := bookmarkData.Pinyin
			if key == "" {
				key = pinyin.Derive(bookmarkData.Name)
			}

			bookmark = models.Bookmark{
				Name:      bookmarkData.Name,
				URL:       bookmarkData.URL,
				Pinyin:    key,
				Icon:      bookmarkData.Icon,
				IsPinned:  bookmarkData.IsPinned,
				SortOrder: bookmarkData.SortOrder,
			}

			if err := db.Create(&bookmark).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create bookmark: %w", err)
			}

			// New rows with no explicit rank take their own ID, same as the API
			if bookmark.SortOrder == 0 {
				if err := db.Model(&bookmark).Update("sort_order", bookmark.ID).Error; err != nil {
					log.Printf("⚠️  Warning: failed to set sort order for bookmark %s: %v", bookmarkData.Name, err)
				}
			}
			return &bookmark, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query bookmark: %w", err)
		}
	}

	return &bookmark, false, nil // created = false (existing)
}

func createBookmarkTags(db *gorm.DB, bookmark *models.Bookmark, tagNames []string, tagMap map[string]*models.Tag) (int, error) {
	created := 0
	for _, tagName := range tagNames {
		tag := tagMap[tagName]
		if tag == nil {
			log.Printf("⚠️  Warning: tag %s not found for bookmark %s", tagName, bookmark.Name)
			continue
		}

		var existing models.BookmarkTag
		err := db.Where("bookmark_id = ? AND tag_id = ?", bookmark.ID, tag.ID).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			link := models.BookmarkTag{
				BookmarkID: bookmark.ID,
				TagID:      tag.ID,
			}
			if err := db.Create(&link).Error; err != nil {
				return created, fmt.Errorf("failed to create bookmark-tag link: %w", err)
			}
			created++
		} else if err != nil {
			return created, fmt.Errorf("failed to query bookmark-tag link: %w", err)
		}
	}
	return created, nil
}
