package session

import (
	"sync"

	"github.com/priyansh/carmitra/internal/model"
)

// ComparisonState pairs the ordered model set with the feature's result
// container. The set mutates independently of submissions: adds and removes
// do not touch the last comparison result.
type ComparisonState struct {
	*FeatureState
	mu  sync.Mutex
	set model.ComparisonSet
}

func NewComparisonState() *ComparisonState {
	return &ComparisonState{FeatureState: NewFeatureState()}
}

func (c *ComparisonState) Add(m model.ComparisonModel) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set.Add(m)
}

func (c *ComparisonState) Remove(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set.Remove(i)
}

// Models returns an immutable snapshot in insertion order.
func (c *ComparisonState) Models() []model.ComparisonModel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set.Models()
}
