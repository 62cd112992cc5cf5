package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/folio/internal/theme"
)

const (
	visitorCookie = "folio_visitor"
	themeCookie   = theme.StorageKey
	cookieMaxAge  = 3600 * 24 * 365
	visitorKey    = "visitor"
)

// visitorMiddleware gives every browser a random id used to key its stored
// preference. Only a hash of the id is ever written to the database.
func visitorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(visitorCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(visitorCookie, id, cookieMaxAge, "/", "", false, true)
		}
		c.Set(visitorKey, id)
		c.Next()
	}
}

// cookieStore keeps the preference in the theme cookie when no database is
// configured.
type cookieStore struct {
	c *gin.Context
}

func (s cookieStore) Load() (string, error) {
	v, err := s.c.Cookie(themeCookie)
	if err != nil {
		return "", theme.ErrNoPreference
	}
	return v, nil
}

func (s cookieStore) Save(value string) error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(themeCookie, value, cookieMaxAge, "/", "", false, true)
	return nil
}

// Header names carrying the browser's color scheme. The client hint is sent
// once the server has advertised it with Accept-CH; static/theme.js sets the
// custom header on every htmx request.
const (
	clientHintHeader = "Sec-CH-Prefers-Color-Scheme"
	schemeHeader     = "X-Prefers-Color-Scheme"
)

// requestEnvironment reads the browser's reported color scheme, falling back
// to def when the request carries none.
func requestEnvironment(c *gin.Context, def theme.Effective) theme.Environment {
	for _, h := range []string{schemeHeader, clientHintHeader} {
		if v := strings.Trim(c.GetHeader(h), `" `); v != "" {
			if e, ok := theme.ParseEffective(v); ok {
				return theme.NewStaticEnvironment(e)
			}
		}
	}
	return theme.NewStaticEnvironment(def)
}

func (s *Server) storeFor(c *gin.Context) theme.Store {
	if s.db == nil {
		return cookieStore{c: c}
	}
	return s.db.Preferences(c.GetString(visitorKey))
}

// resolverFor builds the request's resolver. A server render is always a
// pre-paint render; handlers answering the browser's post-paint requests
// call MarkPainted themselves.
func (s *Server) resolverFor(c *gin.Context) *theme.Resolver {
	return theme.NewResolver(s.storeFor(c), requestEnvironment(c, s.cfg.DefaultScheme))
}
