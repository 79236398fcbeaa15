package interact

import (
	"sync"

	"github.com/woozymasta/clustermap/internal/style"
)

type hoverKey struct {
	kind style.Kind
	id   string
}

// Tracker holds the transient hover flag of every feature.
type Tracker struct {
	hovered map[hoverKey]struct{}
	mu      sync.RWMutex
}

// NewTracker returns a tracker with nothing hovered.
func NewTracker() *Tracker {
	return &Tracker{hovered: make(map[hoverKey]struct{})}
}

// Enter marks a feature as hovered.
func (t *Tracker) Enter(kind style.Kind, id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hovered[hoverKey{kind, id}] = struct{}{}
}

// Leave clears the hover flag of a feature.
func (t *Tracker) Leave(kind style.Kind, id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.hovered, hoverKey{kind, id})
}

// Hovered reports whether a feature is hovered. A nil tracker reports false.
func (t *Tracker) Hovered(kind style.Kind, id string) bool {
	if t == nil {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.hovered[hoverKey{kind, id}]
	return ok
}

// Reset clears every hover flag of a layer, used when its collection is replaced.
func (t *Tracker) Reset(kind style.Kind) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for k := range t.hovered {
		if k.kind == kind {
			delete(t.hovered, k)
		}
	}
}
