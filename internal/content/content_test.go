package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefaultReturnsCopies(t *testing.T) {
	a := Default()
	a.Projects[0].Title = "changed"
	assert.NotEqual(t, "changed", Default().Projects[0].Title)
}

func TestValidateCatchesBrokenRecords(t *testing.T) {
	s := Default()
	s.Skills[0].Skills[0].Level = 120
	s.Projects = append(s.Projects, s.Projects[0])
	s.Posts[0].URL = "not a url"

	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level 120 out of range")
	assert.Contains(t, err.Error(), `project "appointment-booking": duplicate id`)
	assert.Contains(t, err.Error(), `post "web-dev-trends-2024": bad url`)
}

func TestLink(t *testing.T) {
	s := Default()

	u, ok := s.Link(LinkDemo, "art-gallery")
	require.True(t, ok)
	assert.Equal(t, "https://www.chalzart.in/", u)

	u, ok = s.Link(LinkCode, "art-gallery")
	require.True(t, ok)
	assert.Equal(t, "https://github.com/Mohamedyoonus/ChalzArt", u)

	u, ok = s.Link(LinkPost, "react-18")
	require.True(t, ok)
	assert.Contains(t, u, "pieces.app")

	_, ok = s.Link(LinkPost, "art-gallery")
	assert.False(t, ok)
	_, ok = s.Link(LinkKind("resume"), "art-gallery")
	assert.False(t, ok)
}

func TestParseLinkKind(t *testing.T) {
	for _, k := range []string{"demo", "code", "post"} {
		got, ok := ParseLinkKind(k)
		assert.True(t, ok)
		assert.Equal(t, LinkKind(k), got)
	}
	_, ok := ParseLinkKind("DEMO")
	assert.False(t, ok)
}

func TestNavLinksPointAtSections(t *testing.T) {
	s := Default()
	sections := map[string]bool{}
	for _, id := range s.Sections() {
		sections[id] = true
	}
	for _, l := range s.Nav {
		assert.True(t, sections[l.Section], l.Section)
	}
}
