package session

import (
	"sync"

	"github.com/google/uuid"
)

// Manager hands out session IDs and per-session bundles. A bundle is created
// lazily on first use; there is no expiry because the store is ephemeral and
// sized for a handful of interactive users.
type Manager struct {
	mu      sync.Mutex
	bundles map[string]*Bundle
}

// Bundle is everything one browser session owns. Each feature service picks
// exactly one field; no service touches another's container.
type Bundle struct {
	Policy       *FeatureState
	Finance      *FeatureState
	Depreciation *FeatureState
	Comparison   *ComparisonState
	Browser      *FeatureState
	FinePrint    *FeatureState
	Insights     *FeatureState
	Assistant    *AssistantState
}

func NewManager() *Manager {
	return &Manager{bundles: make(map[string]*Bundle)}
}

// NewID mints a fresh session identifier.
func (m *Manager) NewID() string {
	return uuid.NewString()
}

// Bundle returns the session's bundle, creating it on first access.
func (m *Manager) Bundle(id string) *Bundle {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bundles[id]
	if !ok {
		b = &Bundle{
			Policy:       NewFeatureState(),
			Finance:      NewFeatureState(),
			Depreciation: NewFeatureState(),
			Comparison:   NewComparisonState(),
			Browser:      NewFeatureState(),
			FinePrint:    NewFeatureState(),
			Insights:     NewFeatureState(),
			Assistant:    NewAssistantState(),
		}
		m.bundles[id] = b
	}
	return b
}
