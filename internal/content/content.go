// Package content holds the hand-authored records rendered on the portfolio page.
package content

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Icon  string `json:"icon"`
}

type SkillCategory struct {
	Key    string  `json:"key"`
	Title  string  `json:"title"`
	Color  string  `json:"color"`
	Skills []Skill `json:"skills"`
}

type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	DemoURL     string   `json:"demo_url"`
	CodeURL     string   `json:"code_url"`
	Image       string   `json:"image"`
}

// Badge marks a blog post card.
type Badge string

const (
	BadgeNone     Badge = ""
	BadgeTrending Badge = "trending"
	BadgeFeatured Badge = "featured"
	BadgePopular  Badge = "popular"
)

type BlogPost struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Image    string `json:"image"`
	Date     string `json:"date"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Comments int    `json:"comments"`
	Likes    int    `json:"likes"`
	URL      string `json:"url"`
	ReadTime string `json:"read_time"`
	Badge    Badge  `json:"badge,omitempty"`
}

type Education struct {
	ID           string   `json:"id"`
	Degree       string   `json:"degree"`
	Institution  string   `json:"institution"`
	Period       string   `json:"period"`
	Achievements []string `json:"achievements"`
}

type Experience struct {
	ID               string   `json:"id"`
	Role             string   `json:"role"`
	Company          string   `json:"company"`
	Period           string   `json:"period"`
	Responsibilities []string `json:"responsibilities"`
	Skills           []string `json:"skills"`
}

type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Color string `json:"color"`
}

type Highlight struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type NavLink struct {
	Name    string `json:"name"`
	Href    string `json:"href"`
	Section string `json:"section"`
}

type Hero struct {
	Greeting string `json:"greeting"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Tagline  string `json:"tagline"`
}

// Site is every record on the page.
type Site struct {
	Hero       Hero            `json:"hero"`
	AboutMe    string          `json:"about_me"`
	Skills     []SkillCategory `json:"skills"`
	Education  []Education     `json:"education"`
	Experience []Experience    `json:"experience"`
	Posts      []BlogPost      `json:"posts"`
	Projects   []Project       `json:"projects"`
	Contact    ContactInfo     `json:"contact"`
	Social     []SocialLink    `json:"social"`
	Highlights []Highlight     `json:"highlights"`
	Nav        []NavLink       `json:"nav"`
}

// LinkKind is the kind of outbound link counted by the click tracker.
type LinkKind string

const (
	LinkDemo LinkKind = "demo"
	LinkCode LinkKind = "code"
	LinkPost LinkKind = "post"
)

// ParseLinkKind accepts demo, code or post.
func ParseLinkKind(s string) (LinkKind, bool) {
	switch k := LinkKind(s); k {
	case LinkDemo, LinkCode, LinkPost:
		return k, true
	}
	return "", false
}

// Sections lists the page section anchors in document order.
func (s *Site) Sections() []string {
	return []string{"home", "about", "journey", "blog", "projects", "contact"}
}

// Project looks a project up by ID.
func (s *Site) Project(id string) (Project, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// Post looks a blog post up by ID.
func (s *Site) Post(id string) (BlogPost, bool) {
	for _, p := range s.Posts {
		if p.ID == id {
			return p, true
		}
	}
	return BlogPost{}, false
}

// Link resolves the external URL behind a tracked link.
func (s *Site) Link(kind LinkKind, id string) (string, bool) {
	switch kind {
	case LinkDemo, LinkCode:
		p, ok := s.Project(id)
		if !ok {
			return "", false
		}
		if kind == LinkDemo {
			return p.DemoURL, true
		}
		return p.CodeURL, true
	case LinkPost:
		p, ok := s.Post(id)
		if !ok {
			return "", false
		}
		return p.URL, true
	}
	return "", false
}

// Validate checks the registry invariants: unique IDs per kind, skill levels in
// 0..100 and absolute http(s) URLs on every outbound link.
func (s *Site) Validate() error {
	var errs []error

	seen := map[string]bool{}
	for _, cat := range s.Skills {
		for _, sk := range cat.Skills {
			if sk.Level < 0 || sk.Level > 100 {
				errs = append(errs, fmt.Errorf("skill %q: level %d out of range", sk.Name, sk.Level))
			}
		}
	}
	for _, p := range s.Projects {
		if seen["project:"+p.ID] {
			errs = append(errs, fmt.Errorf("project %q: duplicate id", p.ID))
		}
		seen["project:"+p.ID] = true
		for _, u := range []string{p.DemoURL, p.CodeURL} {
			if !isHTTPURL(u) {
				errs = append(errs, fmt.Errorf("project %q: bad url %q", p.ID, u))
			}
		}
	}
	for _, p := range s.Posts {
		if seen["post:"+p.ID] {
			errs = append(errs, fmt.Errorf("post %q: duplicate id", p.ID))
		}
		seen["post:"+p.ID] = true
		if !isHTTPURL(p.URL) {
			errs = append(errs, fmt.Errorf("post %q: bad url %q", p.ID, p.URL))
		}
	}
	for _, e := range s.Education {
		if seen["education:"+e.ID] {
			errs = append(errs, fmt.Errorf("education %q: duplicate id", e.ID))
		}
		seen["education:"+e.ID] = true
	}
	for _, e := range s.Experience {
		if seen["experience:"+e.ID] {
			errs = append(errs, fmt.Errorf("experience %q: duplicate id", e.ID))
		}
		seen["experience:"+e.ID] = true
	}
	return errors.Join(errs...)
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" && !strings.ContainsAny(raw, " \t\n")
}
