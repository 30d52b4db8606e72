// admin.go - privacy-conscious visitor tracking and the admin dashboard
package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Mohamedyoonus/portfolio/internal/content"
	"github.com/Mohamedyoonus/portfolio/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	adminCookie     = "admin_token"
	adminSessionTTL = 24 * time.Hour
)

// initAdmin sets up the IP hashing salt and admin credentials.
func (s *server) initAdmin() {
	s.hashingSalt = generateToken()

	s.jwtSecret = []byte(s.cfg.AdminJWTSecret)
	if len(s.jwtSecret) == 0 {
		// Sessions do not survive a restart without a configured secret.
		s.jwtSecret = []byte(generateToken())
	}

	s.adminUser = s.cfg.AdminUsername
	s.adminPass = s.cfg.AdminPassword
	if s.adminUser == "" {
		s.adminUser = "admin"
		s.log.Warn("using default admin username; set ADMIN_USERNAME")
	}
	// Config refuses an empty password in release mode.
	if s.adminPass == "" {
		s.adminPass = "admin123"
		s.log.Warn("using default admin password; set ADMIN_PASSWORD")
	}

	s.log.Info("admin access available", zap.String("path", "/admin/login"))
	s.log.Info("privacy: visitor tracking enabled with hashed IP addresses")
}

func generateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("crypto/rand: %v", err))
	}
	return hex.EncodeToString(b)
}

// hashIP hashes an IP address with the process salt, consistent per IP.
func (s *server) hashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + s.hashingSalt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// trackVisitor stores one page view. The caller has already added to s.bg.
func (s *server) trackVisitor(ip, userAgent, path string) {
	defer s.bg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.store.RecordVisit(ctx, store.Visit{
		HashedIP:  s.hashIP(ip),
		UserAgent: userAgent,
		Path:      path,
		Timestamp: s.now(),
	})
	if err != nil {
		s.log.Warn("recording visitor", zap.Error(err))
	}
}

// cleanupOldVisitorData deletes visitor records past the retention window.
func (s *server) cleanupOldVisitorData(ctx context.Context) (int64, error) {
	n, err := s.store.Cleanup(ctx, s.now().Add(-s.cfg.VisitorRetention))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Info("privacy cleanup removed old visitor records",
			zap.Int64("rows", n), zap.Duration("retention", s.cfg.VisitorRetention))
	}
	return n, nil
}

func (s *server) signAdminToken(username string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(adminSessionTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func (s *server) verifyAdminToken(raw string) error {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return err
	}
	if claims.Subject != s.adminUser {
		return errors.New("token subject is not the admin user")
	}
	return nil
}

// adminAuthMiddleware requires a valid admin session cookie.
func (s *server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err == nil {
			err = s.verifyAdminToken(token)
		}
		if err != nil {
			if wantsHTML(c) {
				c.Redirect(http.StatusFound, "/admin/login")
			} else {
				respondError(c, http.StatusUnauthorized, "Unauthorized", nil)
			}
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":     "Privacy Policy",
			"retention": retentionText(s.cfg.VisitorRetention),
		})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUser)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPass)) == 1
		if !userOK || !passOK {
			s.log.Warn("failed admin login attempt", zap.String("client", s.hashIP(c.ClientIP())))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"error": "Invalid credentials",
			})
			return
		}

		token, err := s.signAdminToken(username)
		if err != nil {
			c.Error(internalError(err))
			return
		}
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, token, int(adminSessionTTL/time.Second), "/admin", "", s.cfg.Release(), true)
		s.log.Info("admin login successful", zap.String("client", s.hashIP(c.ClientIP())))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", s.cfg.Release(), true)
		s.log.Info("admin logout", zap.String("client", s.hashIP(c.ClientIP())))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(s.adminAuthMiddleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.Error(newAppError(http.StatusInternalServerError, "Failed to load statistics", err))
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": stats,
		})
	})

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.Error(internalError(err))
			return
		}
		respondOK(c, http.StatusOK, "ok", stats)
	})

	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.Error(internalError(err))
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		s.log.Info("admin stats exported", zap.String("client", s.hashIP(c.ClientIP())))
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.DELETE("/links/:kind/:id", func(c *gin.Context) {
		kind, ok := content.ParseLinkKind(c.Param("kind"))
		if !ok {
			respondError(c, http.StatusNotFound, "Link not found", nil)
			return
		}
		found, err := s.store.DeleteLink(c.Request.Context(), string(kind), c.Param("id"))
		if err != nil {
			c.Error(internalError(err))
			return
		}
		if !found {
			respondError(c, http.StatusNotFound, "Link not found", nil)
			return
		}
		s.log.Info("link counter reset", zap.String("kind", string(kind)), zap.String("id", c.Param("id")))
		// Empty 200 so HTMX removes the row.
		c.Status(http.StatusOK)
	})

	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := s.cleanupOldVisitorData(c.Request.Context())
		if err != nil {
			c.Error(internalError(err))
			return
		}
		if wantsHTML(c) {
			c.Redirect(http.StatusSeeOther, "/admin/dashboard")
			return
		}
		respondOK(c, http.StatusOK, "Privacy cleanup complete", gin.H{"deleted": n})
	})
}

func retentionText(d time.Duration) string {
	days := int(d / (24 * time.Hour))
	switch {
	case days >= 365 && days%365 == 0:
		if days == 365 {
			return "12 months"
		}
		return fmt.Sprintf("%d years", days/365)
	case days >= 1:
		return fmt.Sprintf("%d days", days)
	default:
		return d.String()
	}
}

// cleanupLoop applies the retention window and drops idle rate-limit buckets
// until ctx is cancelled.
func (s *server) cleanupLoop(ctx context.Context, every time.Duration) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		if _, err := s.cleanupOldVisitorData(ctx); err != nil && ctx.Err() == nil {
			s.log.Warn("privacy cleanup failed", zap.Error(err))
		}
		if n := s.limiter.sweep(s.now().Add(-time.Hour)); n > 0 {
			s.log.Debug("dropped idle rate limiters", zap.Int("count", n))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
