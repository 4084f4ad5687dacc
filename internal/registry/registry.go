// Package registry provides a global registry for wall layouts.
// Layouts register themselves in init() functions, allowing the world and the
// CLI to discover them by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Layout produces the home cells of the walls for a square grid of the given size.
type Layout func(size int) []core.Point

// LayoutInfo contains metadata about a registered layout.
type LayoutInfo struct {
	Name        string
	Description string
}

type entry struct {
	layout      Layout
	description string
}

var (
	layouts = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a layout to the registry.
// Panics if a layout with the same name is already registered.
func Register(name, description string, l Layout) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := layouts[name]; exists {
		panic(fmt.Sprintf("registry: layout %q already registered", name))
	}
	layouts[name] = entry{layout: l, description: description}
}

// List returns information about all registered layouts, sorted by name.
func List() []LayoutInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LayoutInfo, 0, len(layouts))
	for name, e := range layouts {
		result = append(result, LayoutInfo{Name: name, Description: e.description})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Build returns the deduplicated, in-bounds wall cells of a layout in
// generation order. Returns an error if the name is not registered.
func Build(name string, size int) ([]core.Point, error) {
	mu.RLock()
	e, ok := layouts[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown layout %q", name)
	}

	seen := mapset.New[core.Point]()
	var cells []core.Point
	for _, p := range e.layout(size) {
		if !p.InBounds(size) || seen.Has(p) {
			continue
		}
		seen.Put(p)
		cells = append(cells, p)
	}
	return cells, nil
}

// Exists checks if a layout with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := layouts[name]
	return ok
}
