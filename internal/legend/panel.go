package legend

import "sync"

// Panel is a Host that records attached controls, standing in for the
// control corner of a map widget.
type Panel struct {
	controls []*Control
	mu       sync.RWMutex
}

// AddControl attaches c unless it is already attached.
func (p *Panel) AddControl(c *Control) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, have := range p.controls {
		if have == c {
			return
		}
	}
	p.controls = append(p.controls, c)
}

// RemoveControl detaches c; unknown controls are ignored.
func (p *Panel) RemoveControl(c *Control) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, have := range p.controls {
		if have == c {
			p.controls = append(p.controls[:i], p.controls[i+1:]...)
			return
		}
	}
}

// Controls returns the attached controls.
func (p *Panel) Controls() []*Control {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]*Control(nil), p.controls...)
}
