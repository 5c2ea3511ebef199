package repositories

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"findash/internal/models"
)

var (
	ErrInstitutionNotFound = errors.New("institution not found")
)

//go:embed catalog_seed.json
var defaultCatalog []byte

// catalogFile is the on-disk shape of the reference configuration:
// the institution snapshot catalogue plus the category threshold table.
type catalogFile struct {
	CategoryThresholds models.CategoryThresholdTable `json:"category_thresholds"`
	Institutions       []models.AccountSnapshot      `json:"institutions"`
}

// catalogRepository serves the static institution catalogue. The data
// is read once at construction and never mutated afterwards, so lookups
// need no locking.
type catalogRepository struct {
	institutions map[string]models.AccountSnapshot
	order        []string
	thresholds   models.CategoryThresholdTable
}

// NewCatalogRepository loads the catalogue from the given JSON file.
// An empty path selects the embedded default catalogue.
func NewCatalogRepository(path string) (CatalogRepositoryInterface, error) {
	raw := defaultCatalog
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalogue file: %w", err)
		}
		raw = data
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalogue: %w", err)
	}

	repo := &catalogRepository{
		institutions: make(map[string]models.AccountSnapshot, len(file.Institutions)),
		order:        make([]string, 0, len(file.Institutions)),
		thresholds:   file.CategoryThresholds,
	}
	if repo.thresholds == nil {
		repo.thresholds = models.CategoryThresholdTable{}
	}

	for _, inst := range file.Institutions {
		if _, exists := repo.institutions[inst.ID]; exists {
			slog.Warn("duplicate institution in catalogue, keeping first occurrence",
				"institution_id", inst.ID)
			continue
		}
		repo.institutions[inst.ID] = inst
		repo.order = append(repo.order, inst.ID)
	}

	slog.Info("institution catalogue loaded",
		"institutions", len(repo.order),
		"thresholds", len(repo.thresholds),
		"source", sourceName(path))

	return repo, nil
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

// GetInstitution returns the snapshot for an institution ID
func (r *catalogRepository) GetInstitution(id string) (*models.AccountSnapshot, error) {
	inst, ok := r.institutions[id]
	if !ok {
		return nil, ErrInstitutionNotFound
	}
	return &inst, nil
}

// ListInstitutions returns all snapshots in catalogue order
func (r *catalogRepository) ListInstitutions() []models.AccountSnapshot {
	out := make([]models.AccountSnapshot, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.institutions[id])
	}
	return out
}

// CategoryThresholds returns the configured concentration ceilings
func (r *catalogRepository) CategoryThresholds() models.CategoryThresholdTable {
	return r.thresholds
}
