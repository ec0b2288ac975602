// Package registry provides a global registry of AI programs.
// Each program pairs a planning strategy with a name and a trail colour.
// Programs register themselves in init() functions, allowing the platform
// to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/lightcycle/internal/core"
)

// Program describes a selectable AI opponent.
type Program struct {
	ID          string        // Lookup key, e.g. "rinzler"
	Title       string        // Display name, e.g. "Rinzler"
	Strategy    core.Strategy // Planning heuristic
	Color       core.Color    // Trail colour token
	Description string        // One-line summary for listings
}

var (
	programs = make(map[string]Program)
	mu       sync.RWMutex
)

// Register adds a program to the registry.
// Panics if a program with the same ID is already registered.
func Register(p Program) {
	mu.Lock()
	defer mu.Unlock()

	id := strings.ToLower(p.ID)
	if _, exists := programs[id]; exists {
		panic(fmt.Sprintf("registry: program %q already registered", id))
	}
	p.ID = id
	programs[id] = p
}

// List returns all registered programs, sorted by ID.
func List() []Program {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Program, 0, len(programs))
	for _, p := range programs {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a program by its ID (case-insensitive).
// Returns an error if the ID is not registered.
func Get(id string) (Program, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := programs[strings.ToLower(id)]
	if !ok {
		return Program{}, fmt.Errorf("registry: unknown program %q", id)
	}
	return p, nil
}

// Exists checks if a program with the given ID is registered.
func Exists(id string) bool {
	_, err := Get(id)
	return err == nil
}
