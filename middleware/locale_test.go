package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"purebiz_laundry_go/config"
	"purebiz_laundry_go/services/i18n"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if _, err := i18n.Load(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func langCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "lang" {
			return cookie
		}
	}
	return nil
}

func TestLocale(t *testing.T) {
	e := echo.New()
	cfg := &config.Config{Environment: "development"}

	run := func(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		handler := Locale(cfg)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))
		return c, rec
	}

	t.Run("PriorityQueryParam", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=es", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "en"})
		c, rec := run(req)

		assert.Equal(t, "es", c.Get("locale"))
		cookie := langCookie(rec)
		require.NotNil(t, cookie)
		assert.Equal(t, "es", cookie.Value)
		assert.False(t, cookie.Secure)
	})

	t.Run("UnsupportedQueryParam", func(t *testing.T) {
		c, rec := run(httptest.NewRequest(http.MethodGet, "/?lang=fr", nil))
		assert.Equal(t, "en", c.Get("locale"))
		cookie := langCookie(rec)
		require.NotNil(t, cookie)
		assert.Equal(t, "en", cookie.Value)
	})

	t.Run("PriorityCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "es"})
		req.Header.Set("Accept-Language", "en-US")
		c, rec := run(req)

		assert.Equal(t, "es", c.Get("locale"))
		assert.Nil(t, langCookie(rec))
	})

	t.Run("UnsupportedCookieFallsThrough", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "xx"})
		req.Header.Set("Accept-Language", "es-MX")
		c, _ := run(req)
		assert.Equal(t, "es", c.Get("locale"))
	})

	t.Run("PriorityHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "es-ES,es;q=0.9")
		c, _ := run(req)
		assert.Equal(t, "es", c.Get("locale"))
	})

	t.Run("HeaderWeights", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "fr-FR,en;q=0.8,es;q=0.5")
		c, _ := run(req)
		assert.Equal(t, "en", c.Get("locale"))
	})

	t.Run("UnmatchedHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "de-DE")
		c, _ := run(req)
		assert.Equal(t, "en", c.Get("locale"))
	})

	t.Run("DefaultLanguage", func(t *testing.T) {
		c, _ := run(httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "en", c.Get("locale"))
	})

	t.Run("RequestContext", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=es", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := Locale(cfg)(func(c echo.Context) error {
			assert.Equal(t, "es", i18n.GetLocale(c.Request().Context()))
			return c.NoContent(http.StatusOK)
		})
		assert.NoError(t, handler(c))
	})

	t.Run("SecureCookieInProduction", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=es", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		handler := Locale(&config.Config{Environment: "production"})(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))

		cookie := langCookie(rec)
		require.NotNil(t, cookie)
		assert.True(t, cookie.Secure)
	})
}

func TestGetLocale(t *testing.T) {
	e := echo.New()
	t.Run("WithLocale", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		c.Set("locale", "es")
		assert.Equal(t, "es", GetLocale(c))
	})

	t.Run("WithoutLocale", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		assert.Equal(t, "en", GetLocale(c))
	})
}
