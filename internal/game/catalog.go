package game

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// InteractionKind names what tapping a prop does outside edit mode.
type InteractionKind string

const (
	InteractNone  InteractionKind = ""
	InteractPose  InteractionKind = "POSE"
	InteractTrunk InteractionKind = "TRUNK"
	InteractRadio InteractionKind = "RADIO"
)

// Blueprint is one palette entry. Shape construction lives entirely in the
// presentation layer; the core only needs identity, category, and footprint.
type Blueprint struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Icon        string          `yaml:"icon"`
	Category    ItemCategory    `yaml:"category"`
	Radius      float64         `yaml:"radius"`
	Singleton   bool            `yaml:"singleton"`
	Interaction InteractionKind `yaml:"interaction"`
}

// FallbackRadius covers blueprints missing from the catalog, e.g. items in
// an old save whose blueprint was since renamed.
const FallbackRadius = 0.5

var (
	catalogOnce sync.Once
	catalogList []Blueprint
	catalogByID map[string]Blueprint
	catalogErr  error
)

func loadCatalog() {
	var doc struct {
		Items []Blueprint `yaml:"items"`
	}
	if err := yaml.Unmarshal(catalogYAML, &doc); err != nil {
		catalogErr = fmt.Errorf("parse embedded catalog: %w", err)
		return
	}
	byID := make(map[string]Blueprint, len(doc.Items))
	for _, bp := range doc.Items {
		if bp.ID == "" {
			catalogErr = fmt.Errorf("catalog entry %q has no id", bp.Name)
			return
		}
		if _, dup := byID[bp.ID]; dup {
			catalogErr = fmt.Errorf("catalog id %q duplicated", bp.ID)
			return
		}
		byID[bp.ID] = bp
	}
	catalogList = doc.Items
	catalogByID = byID
}

// Catalog returns every blueprint in palette order. The catalog is embedded
// and immutable; a malformed catalog is a programmer error.
func Catalog() []Blueprint {
	catalogOnce.Do(loadCatalog)
	if catalogErr != nil {
		panic(catalogErr)
	}
	return catalogList
}

func BlueprintByID(id string) (Blueprint, bool) {
	Catalog()
	bp, ok := catalogByID[id]
	return bp, ok
}

// CollisionRadius resolves a blueprint's obstacle footprint, falling back
// for unrecognized ids.
func CollisionRadius(itemID string) float64 {
	if bp, ok := BlueprintByID(itemID); ok {
		return bp.Radius
	}
	return FallbackRadius
}
