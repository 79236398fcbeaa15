// Package legend builds the color key control of the active layer.
package legend

import (
	"sync"

	"github.com/woozymasta/clustermap/internal/style"
)

// Entry is one color swatch of the legend.
type Entry struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Control is a rendered legend.
type Control struct {
	Layer   style.Kind `json:"layer"`
	Title   string     `json:"title"`
	Entries []Entry    `json:"entries"`
}

// Build renders every rule of t followed by its default entry.
func Build(t style.Table) *Control {
	c := &Control{
		Layer:   t.Kind,
		Title:   t.Title,
		Entries: make([]Entry, 0, len(t.Rules)+1),
	}
	for _, r := range t.Rules {
		c.Entries = append(c.Entries, Entry{Label: r.Label, Color: r.Color})
	}
	c.Entries = append(c.Entries, Entry{Label: t.Default.Label, Color: t.Default.Color})

	return c
}

// Host is where legend controls are attached, usually the map.
type Host interface {
	AddControl(c *Control)
	RemoveControl(c *Control)
}

// Controller keeps at most one legend attached to a host.
type Controller struct {
	host    Host
	current *Control
	mu      sync.Mutex
}

// NewController returns a controller with nothing attached.
func NewController(host Host) *Controller {
	return &Controller{host: host}
}

// Show detaches the current legend and attaches one for kind.
func (c *Controller) Show(kind style.Kind) *Control {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.detach()
	c.current = Build(style.TableFor(kind))
	c.host.AddControl(c.current)

	return c.current
}

// Detach removes the current legend, if any.
func (c *Controller) Detach() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.detach()
}

// Current returns the attached legend or nil.
func (c *Controller) Current() *Control {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Controller) detach() {
	if c.current == nil {
		return
	}
	c.host.RemoveControl(c.current)
	c.current = nil
}
