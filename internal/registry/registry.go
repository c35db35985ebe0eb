// Package registry provides a global registry for scene factories.
// Games register their scenes in init() functions, allowing the director
// to instantiate scenes by ID without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/sidewalk/internal/scene"
)

var (
	factories = make(map[scene.ID]scene.Factory)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Typically called from a game's init() function.
// Panics if a scene with the same ID is already registered.
func Register(id scene.ID, f scene.Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	factories[id] = f
}

// List returns all registered scene IDs, sorted.
func List() []scene.ID {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]scene.ID, 0, len(factories))
	for id := range factories {
		result = append(result, id)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i] < result[j]
	})

	return result
}

// Create instantiates a new scene by its ID.
// Returns an error if the scene ID is not registered.
func Create(id scene.ID) (scene.Scene, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown scene %q", id)
	}

	return f(), nil
}

// Default returns a catalog backed by the global registry.
func Default() scene.Catalog {
	return scene.CatalogFunc(Create)
}
