// Package registry provides a global registry for scene factories.
// Scenes register themselves in init() functions, allowing the platform
// to discover and instantiate scenes without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-playroom/internal/core"
)

// Scene is the interface every playroom scene implements.
// Scenes contain pure logic with no Bubble Tea dependency.
// The platform handles input mapping, timing, and rendering.
type Scene interface {
	// ID returns a unique identifier for this scene (e.g., "bubbles").
	// Used for CLI commands and session storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Mount builds the scene for the given viewport and collaborators.
	// Mounting an already mounted scene rebuilds it from scratch.
	Mount(cfg core.RuntimeConfig, env Env)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current scene into the provided screen buffer.
	Render(dst *core.Screen)

	// Unmount cancels every pending timer and drops all scene state.
	// Calls after Unmount are no-ops until the next Mount.
	Unmount()

	// State returns the current scene counters.
	State() core.SceneState
}

// SceneInfo contains metadata about a registered scene.
type SceneInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a scene.
type Factory func() Scene

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Panics if a scene with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered scenes, sorted by ID.
func List() []SceneInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SceneInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SceneInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new scene by its ID.
func Create(id string) (Scene, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown scene %q", id)
	}

	return f(), nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
