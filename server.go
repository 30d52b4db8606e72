package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Mohamedyoonus/portfolio/internal/config"
	"github.com/Mohamedyoonus/portfolio/internal/contact"
	"github.com/Mohamedyoonus/portfolio/internal/content"
	"github.com/Mohamedyoonus/portfolio/internal/navigation"
	"github.com/Mohamedyoonus/portfolio/internal/store"
	"github.com/Mohamedyoonus/portfolio/web"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type server struct {
	cfg     *config.Config
	log     *zap.Logger
	store   *store.Store
	site    *content.Site
	form    *contact.Form
	limiter *ipLimiter

	hashingSalt string
	jwtSecret   []byte
	adminUser   string
	adminPass   string

	// background visitor writes
	bg sync.WaitGroup

	now func() time.Time
}

func newServer(cfg *config.Config, log *zap.Logger, st *store.Store, site *content.Site) *server {
	s := &server{
		cfg:     cfg,
		log:     log,
		store:   st,
		site:    site,
		limiter: newIPLimiter(cfg.ContactRateLimitRPS, cfg.ContactRateLimitBurst),
		now:     time.Now,
	}

	s.form = contact.NewForm(contact.NewDispatcher(cfg.ContactChannelURL, cfg.ContactRecipient))
	s.form.OnTransition = func(from, to contact.Phase) {
		s.log.Debug("contact form transition", zap.Stringer("from", from), zap.Stringer("to", to))
	}

	s.initAdmin()
	return s
}

// engine builds the gin router with every route registered.
func (s *server) engine() (*gin.Engine, error) {
	tmpl, err := web.Templates(templateFuncs)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	if err := r.SetTrustedProxies(s.cfg.TrustedProxies()); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.SetHTMLTemplate(tmpl)
	r.Use(requestID(), s.requestLogger(), gin.Recovery(), securityHeaders(s.cfg.Release()), errorHandler(s.log))
	r.Use(s.visitorTracking())

	r.StaticFS("/static", http.FS(web.Static()))

	r.GET("/", s.page)
	r.GET("/projects", s.page)
	r.GET("/contact", s.page)
	r.GET("/healthz", s.healthz)

	// HTMX fragments
	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.rateLimit(s.limiter), s.submitContact)
	r.GET("/nav", s.navFragment)

	r.GET("/go/:kind/:id", s.followLink)

	api := r.Group("/api")
	api.GET("/content", s.apiContent)
	api.POST("/contact", s.rateLimit(s.limiter), s.apiSubmitContact)

	s.setupAdminRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		c.Error(notFound("Page not found"))
	})
	return r, nil
}

// handler wraps the router with CORS for the JSON API.
func (s *server) handler() (http.Handler, error) {
	r, err := s.engine()
	if err != nil {
		return nil, err
	}
	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Requested-With", "X-Request-ID"},
		MaxAge:         86400,
	})
	return c.Handler(r), nil
}

func (s *server) pageData(active string, form contact.FormState) gin.H {
	return gin.H{
		"Site":         s.site,
		"Nav":          s.navView(navigation.NavState{Active: active}),
		"Contact":      newContactView(form),
		"ContactIntro": content.ContactIntro,
		"FooterNote":   content.FooterNote,
		"Year":         s.now().Year(),
	}
}

// page renders the whole single page with the route's section marked active.
func (s *server) page(c *gin.Context) {
	state := navigation.NavState{}
	state = s.tracker(nil).Update(state, navigation.RouteChanged{Path: c.Request.URL.Path})
	c.HTML(http.StatusOK, "index.html", s.pageData(state.Active, contact.FormState{}))
}

func (s *server) healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := s.store.Ping(ctx); err != nil {
		c.Error(newAppError(http.StatusServiceUnavailable, "database unavailable", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *server) apiContent(c *gin.Context) {
	respondOK(c, http.StatusOK, "ok", s.site)
}

// followLink counts a click on a project or blog link and redirects to it.
func (s *server) followLink(c *gin.Context) {
	kind, ok := content.ParseLinkKind(c.Param("kind"))
	if !ok {
		c.Error(notFound("Unknown link"))
		return
	}
	id := c.Param("id")
	target, ok := s.site.Link(kind, id)
	if !ok {
		c.Error(notFound("Unknown link"))
		return
	}

	if c.GetHeader("DNT") != "1" {
		if err := s.store.RecordClick(c.Request.Context(), string(kind), id, target, s.now()); err != nil {
			// A lost click must not block the visitor.
			s.log.Warn("recording link click", zap.String("kind", string(kind)), zap.String("id", id), zap.Error(err))
		}
	}
	c.Redirect(http.StatusFound, target)
}

// shutdown waits for background visitor writes.
func (s *server) shutdown() {
	s.bg.Wait()
}

var templateFuncs = map[string]any{
	"join": strings.Join,
}
