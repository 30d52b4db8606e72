package navigation

import "strings"

// ScrolledThreshold is the offset past which the nav bar gets its solid background.
const ScrolledThreshold = 50

// NavState is what the nav bar renders.
type NavState struct {
	Active   string
	MenuOpen bool
	Scrolled bool
}

// Msg is an input event for the nav bar.
type Msg interface {
	isMsg()
}

// MenuToggled flips the mobile menu.
type MenuToggled struct{}

// RouteChanged is a navigation to Path.
type RouteChanged struct {
	Path string
}

func (ScrollPositionChanged) isMsg() {}
func (MenuToggled) isMsg()           {}
func (RouteChanged) isMsg()          {}

// SectionForPath maps a route to its section: "/" is home, "/projects" is projects.
func SectionForPath(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "home"
	}
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		trimmed = trimmed[:i]
	}
	return trimmed
}

// Update applies msg to state.
func (t *Tracker) Update(state NavState, msg Msg) NavState {
	switch m := msg.(type) {
	case ScrollPositionChanged:
		state.Scrolled = m.Offset > ScrolledThreshold
		if id, ok := t.Active(m.Offset); ok {
			state.Active = id
		}
	case MenuToggled:
		state.MenuOpen = !state.MenuOpen
	case RouteChanged:
		state.Active = SectionForPath(m.Path)
		state.MenuOpen = false
	}
	return state
}
