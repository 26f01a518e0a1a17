package nav

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Phase is the position of the content surface in a load sequence.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaceholder
	PhaseRequested
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhasePlaceholder:
		return "placeholder"
	case PhaseRequested:
		return "requested"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// LoadState describes the current or most recent content load.
type LoadState struct {
	Phase      Phase
	Locator    string
	Name       string
	Generation uint64
	Started    time.Time
	Elapsed    time.Duration
	Hooked     bool
	Err        error
}

// Load returns the current load state.
func (c *Controller) Load() LoadState { return c.load }

// LoadContent shows the placeholder, then requests locator after the
// configured delay. A load started while another is pending cancels it.
func (c *Controller) LoadContent(locator, name string) {
	if c.pending != nil {
		if c.pending.Stop() {
			c.log.WithField("topic", c.load.Name).Debug("superseded pending load")
		}
		c.pending = nil
	}

	gen := c.load.Generation + 1
	c.load = LoadState{
		Phase:      PhasePlaceholder,
		Locator:    locator,
		Name:       name,
		Generation: gen,
		Started:    c.now(),
	}
	if c.surface != nil {
		c.surface.Navigate(Request{Locator: c.placeholder, Name: name, Generation: gen})
	}

	if c.delay < 0 || c.scheduler == nil {
		c.request(gen)
		return
	}
	c.pending = c.scheduler.Schedule(c.delay, func() { c.request(gen) })
}

func (c *Controller) request(gen uint64) {
	if gen != c.load.Generation || c.load.Phase != PhasePlaceholder {
		return
	}
	c.pending = nil
	c.load.Phase = PhaseRequested
	if c.surface != nil {
		c.surface.Navigate(Request{Locator: c.load.Locator, Name: c.load.Name, Generation: gen})
	}
}

// SurfaceLoaded is called by the surface once the document for gen has
// finished loading, with the error that prevented it if any. Results for
// any generation other than the current request are dropped. It reports
// whether the result was accepted.
func (c *Controller) SurfaceLoaded(gen uint64, err error) bool {
	if gen != c.load.Generation || c.load.Phase != PhaseRequested {
		c.log.WithFields(logrus.Fields{
			"generation": gen,
			"current":    c.load.Generation,
		}).Debug("dropping stale load result")
		return false
	}

	c.load.Elapsed = c.now().Sub(c.load.Started)
	entry := c.log.WithFields(logrus.Fields{
		"topic":   c.load.Name,
		"locator": c.load.Locator,
		"seconds": c.load.Elapsed.Seconds(),
	})

	if err != nil {
		c.load.Phase = PhaseFailed
		c.load.Err = err
		entry.WithError(err).Warn("page failed to load")
		return true
	}

	c.load.Phase = PhaseLoaded
	entry.Infof("page %q loaded in %.2f seconds", c.load.Name, c.load.Elapsed.Seconds())

	if c.surface != nil {
		c.load.Hooked = c.surface.HookKeys(c.HandleKey)
	}
	if !c.load.Hooked {
		entry.Debug("content surface does not accept key hooks")
	}

	if c.host != nil {
		c.host.SetTitle(titlePrefix + c.load.Name)
	}
	return true
}
