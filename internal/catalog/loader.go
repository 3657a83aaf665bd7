package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/openheads/headstore/internal/domain"
	"github.com/openheads/headstore/internal/logger"
	"github.com/openheads/headstore/internal/repository"
	"github.com/openheads/headstore/internal/validation"
)

// Sentinel errors for catalog loader
var (
	ErrDuplicateEntryID = errors.New("duplicate entry id")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON configuration for the catalog
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Categories []CategoryDef `json:"categories"`
	Entries    []Def         `json:"entries"`
}

// CategoryDef represents a category's display metadata in the JSON
type CategoryDef struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description,omitempty"`
	Texture     string `json:"texture,omitempty"`
}

// Def represents a single catalog entry definition in the JSON
type Def struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Texture     string   `json:"texture,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Price       int      `json:"price"`
	Category    string   `json:"category"`
	AcquireMode string   `json:"acquire_mode,omitempty"`
}

// Loader handles loading and validating catalog configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, repo repository.Catalog) (*SyncResult, error)
}

// SyncResult contains the result of syncing the catalog to the database
type SyncResult struct {
	EntriesSynced    int
	CategoriesSynced int
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads and parses a catalog JSON file
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, SchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the catalog configuration for errors
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Entries) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoEntriesDefined)
	}

	categories := make(map[string]bool, len(config.Categories))
	for i, c := range config.Categories {
		if c.Name == "" {
			return fmt.Errorf(ErrFmtCategoryEmptyName, ErrInvalidConfig, i)
		}
		if categories[c.Name] {
			return fmt.Errorf(ErrFmtCategoryDuplicate, ErrInvalidConfig, c.Name)
		}
		categories[c.Name] = true
	}

	ids := make(map[string]bool, len(config.Entries))
	for i := range config.Entries {
		if err := l.validateEntryDef(i, &config.Entries[i], ids, categories); err != nil {
			return err
		}
	}

	return nil
}

func (l *catalogLoader) validateEntryDef(index int, entry *Def, ids, categories map[string]bool) error {
	if entry.ID == "" {
		return fmt.Errorf(ErrFmtEntryAtIndexEmpty, ErrInvalidConfig, index)
	}

	if ids[entry.ID] {
		return fmt.Errorf(ErrFmtEntryDuplicate, ErrDuplicateEntryID, entry.ID)
	}
	ids[entry.ID] = true

	if entry.DisplayName == "" {
		return fmt.Errorf(ErrFmtEntryEmptyDisplay, ErrInvalidConfig, entry.ID)
	}
	if entry.Price < 0 {
		return fmt.Errorf(ErrFmtEntryNegativePrice, ErrInvalidConfig, entry.ID)
	}

	mode := acquireMode(entry)
	if !mode.Valid() {
		return fmt.Errorf(ErrFmtEntryBadAcquireMode, ErrInvalidConfig, entry.ID, entry.AcquireMode)
	}

	// Categories listed in the config must be declared; undeclared ones
	// would silently lose their display metadata
	if len(categories) > 0 && entry.Category != "" && !categories[entry.Category] {
		return fmt.Errorf(ErrFmtEntryUnknownCategory, ErrInvalidConfig, entry.ID, entry.Category)
	}

	return nil
}

func acquireMode(entry *Def) domain.AcquireMode {
	if entry.AcquireMode == "" {
		return domain.AcquireModePurchasable
	}
	return domain.AcquireMode(entry.AcquireMode)
}

// DomainEntries converts the config definitions to domain entries.
func (c *Config) DomainEntries() []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, 0, len(c.Entries))
	for i := range c.Entries {
		def := &c.Entries[i]
		out = append(out, domain.CatalogEntry{
			ID:          def.ID,
			DisplayName: def.DisplayName,
			Texture:     def.Texture,
			Tags:        def.Tags,
			Price:       def.Price,
			Category:    def.Category,
			AcquireMode: acquireMode(def),
		})
	}
	return out
}

// DomainCategories converts the config category metadata to domain categories.
func (c *Config) DomainCategories() []domain.Category {
	out := make([]domain.Category, 0, len(c.Categories))
	for _, def := range c.Categories {
		out = append(out, domain.Category{
			Name:        def.Name,
			DisplayName: def.DisplayName,
			Description: def.Description,
			Texture:     def.Texture,
		})
	}
	return out
}

// SyncToDatabase replaces the stored catalog with the config contents.
// The repository applies the swap in a single transaction, so readers
// never see a half-written catalog.
func (l *catalogLoader) SyncToDatabase(ctx context.Context, config *Config, repo repository.Catalog) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	entries := config.DomainEntries()
	if err := repo.ReplaceEntries(ctx, entries); err != nil {
		return nil, fmt.Errorf(ErrMsgReplaceEntriesFailed, err)
	}

	result := &SyncResult{
		EntriesSynced:    len(entries),
		CategoriesSynced: len(config.Categories),
	}

	log.Info(LogMsgCatalogSynced,
		"entries", result.EntriesSynced,
		"categories", result.CategoriesSynced)

	return result, nil
}
