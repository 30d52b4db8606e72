package main

import (
	"math"
	"net/http"
	"strconv"

	"github.com/Mohamedyoonus/portfolio/internal/navigation"

	"github.com/gin-gonic/gin"
)

func (s *server) tracker(sections []navigation.Section) *navigation.Tracker {
	return navigation.NewTracker(sections, s.cfg.NavHeaderOffset)
}

// navFragment re-renders the nav bar for the page's current scroll position.
// The page sends its section layout along with the offset, the section it has
// highlighted now and whether the mobile menu is open.
func (s *server) navFragment(c *gin.Context) {
	sections, err := navigation.ParseLayout(c.Query("layout"))
	if err != nil {
		c.Error(badRequest(err.Error()))
		return
	}

	state := navigation.NavState{
		Active:   c.DefaultQuery("active", "home"),
		MenuOpen: c.Query("open") == "true",
	}
	t := s.tracker(sections)

	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(offset) || math.IsInf(offset, 0) {
			c.Error(badRequest("offset must be a number"))
			return
		}
		state = t.Update(state, navigation.ScrollPositionChanged{Offset: offset})
	}
	if c.Query("toggle") != "" {
		state = t.Update(state, navigation.MenuToggled{})
	}

	c.HTML(http.StatusOK, "nav.html", s.navView(state))
}
