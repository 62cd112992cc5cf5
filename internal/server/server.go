// Package server serves the portfolio over HTTP.
package server

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/page"
	"github.com/Zachkp/folio/internal/storage"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Server holds the rendered content and the router.
type Server struct {
	cfg       config.Config
	portfolio content.Portfolio
	sections  []sectionView
	db        *storage.DB
	themeCSS  string
	router    *gin.Engine
}

// New builds the router. db may be nil, in which case preferences are kept
// in a cookie.
func New(cfg config.Config, p content.Portfolio, db *storage.DB) (*Server, error) {
	sections, err := buildSections(page.Build(p))
	if err != nil {
		return nil, err
	}
	css, err := buildThemeCSS()
	if err != nil {
		return nil, fmt.Errorf("build theme css: %w", err)
	}
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:       cfg,
		portfolio: p,
		sections:  sections,
		db:        db,
		themeCSS:  css,
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))
	r.Static("/images", cfg.ImagesDir)
	r.Use(visitorMiddleware())

	r.GET("/", s.handleIndex)
	r.GET("/theme.css", s.handleThemeCSS)
	r.GET("/theme/toggle", s.handleToggleFragment)
	r.POST("/theme/toggle", s.handleToggle)
	r.POST("/theme", s.handleSetPreference)
	r.GET("/api/theme", s.handleThemeAPI)

	s.router = r
	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run prunes stale preferences in the background and serves on cfg.Port.
func (s *Server) Run() error {
	if s.db != nil {
		go func() {
			if _, err := s.db.Cleanup(s.cfg.PreferenceRetention); err != nil {
				log.Printf("Error cleaning up preferences: %v", err)
			}
		}()
	}
	log.Printf("Serving portfolio for %s on :%s", s.portfolio.Name, s.cfg.Port)
	return s.router.Run(":" + s.cfg.Port)
}
