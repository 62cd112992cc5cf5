package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/theme"
)

// Home page. Rendered before the browser has painted, so nothing in it
// depends on the visitor's theme.
func (s *Server) handleIndex(c *gin.Context) {
	r := s.resolverFor(c)
	defer r.Close()

	c.Header("Accept-CH", clientHintHeader)
	c.Header("Vary", clientHintHeader)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"portfolio": s.portfolio,
		"sections":  s.sections,
		"theme":     newThemeView(r),
	})
}

func (s *Server) handleThemeCSS(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(s.themeCSS))
}

// HTMX fires this with hx-trigger="load" once the page has painted, which
// makes it the paint-commit signal.
func (s *Server) handleToggleFragment(c *gin.Context) {
	r := s.paintedResolver(c)
	defer r.Close()
	c.HTML(http.StatusOK, "toggle.html", gin.H{"theme": newThemeView(r)})
}

func (s *Server) handleToggle(c *gin.Context) {
	r := s.paintedResolver(c)
	defer r.Close()
	r.Toggle()
	c.HTML(http.StatusOK, "toggle.html", gin.H{"theme": newThemeView(r)})
}

func (s *Server) handleSetPreference(c *gin.Context) {
	p, err := theme.ParsePreference(c.PostForm("preference"))
	if err != nil {
		c.HTML(http.StatusBadRequest, "theme-error.html", gin.H{
			"error": "Theme must be light, dark or system.",
		})
		return
	}
	r := s.paintedResolver(c)
	defer r.Close()
	r.SetPreference(p)
	c.HTML(http.StatusOK, "toggle.html", gin.H{"theme": newThemeView(r)})
}

func (s *Server) handleThemeAPI(c *gin.Context) {
	r := s.resolverFor(c)
	defer r.Close()
	c.JSON(http.StatusOK, gin.H{
		"preference": r.Preference(),
		"effective":  r.EffectiveTheme(),
		"hydration":  r.Hydration().String(),
	})
}

// paintedResolver returns a Ready resolver whose changes are announced to
// the page through an HX-Trigger header.
func (s *Server) paintedResolver(c *gin.Context) *theme.Resolver {
	r := s.resolverFor(c)
	r.Subscribe(func(ch theme.Change) {
		setThemeTrigger(c, ch)
	})
	r.MarkPainted()
	return r
}

func setThemeTrigger(c *gin.Context, ch theme.Change) {
	payload, err := json.Marshal(map[string]any{
		"theme-changed": map[string]string{
			"preference": ch.Preference.String(),
			"effective":  ch.Effective.String(),
		},
	})
	if err != nil {
		return
	}
	c.Header("HX-Trigger", string(payload))
}
