package loader

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Feature is a self-contained group of routes.
type Feature interface {
	// Name identifies the feature in logs and errors.
	Name() string
	// IsEnabled reports whether the feature should be mounted.
	IsEnabled() bool
	// Load registers the feature routes on the router.
	Load(app fiber.Router) error
}

// Manager keeps features in registration order.
type Manager struct {
	features []Feature
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register appends features. Registration order is route order.
func (m *Manager) Register(features ...Feature) {
	m.features = append(m.features, features...)
}

// Enabled returns the enabled features in registration order.
func (m *Manager) Enabled() []Feature {
	enabled := make([]Feature, 0, len(m.features))
	for _, f := range m.features {
		if f.IsEnabled() {
			enabled = append(enabled, f)
		}
	}
	return enabled
}

// LoadAll mounts every enabled feature and stops at the first failure.
func (m *Manager) LoadAll(app fiber.Router) error {
	for _, f := range m.Enabled() {
		if err := f.Load(app); err != nil {
			return fmt.Errorf("failed to load feature %s: %w", f.Name(), err)
		}
	}
	return nil
}
