package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"purebiz_laundry_go/config"
	"purebiz_laundry_go/services/i18n"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
)

const langCookieName = "lang"

// Locale middleware handles language detection and persistence.
// Priority:
// 1. Query param "lang" (sets cookie)
// 2. Cookie "lang"
// 3. Accept-Language header
// 4. Default ("en")
//
// The i18n catalogs must be loaded before Locale is called.
func Locale(cfg *config.Config) echo.MiddlewareFunc {
	langs := supportedLanguages()
	tags := make([]language.Tag, len(langs))
	for i, l := range langs {
		tags[i] = language.Make(l)
	}
	matcher := language.NewMatcher(tags)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := strings.ToLower(strings.TrimSpace(c.QueryParam("lang")))
			if lang != "" {
				if !i18n.IsSupported(lang) {
					lang = i18n.DefaultLanguage()
				}
				setLanguageCookie(c, lang, cfg.IsProduction())
			} else if cookie, err := c.Cookie(langCookieName); err == nil && i18n.IsSupported(cookie.Value) {
				lang = cookie.Value
			}

			if lang == "" {
				lang = i18n.DefaultLanguage()
				if accept := c.Request().Header.Get("Accept-Language"); accept != "" {
					requested, _, _ := language.ParseAcceptLanguage(accept)
					if _, idx, conf := matcher.Match(requested...); conf != language.No {
						lang = langs[idx]
					}
				}
			}

			c.Set("locale", lang)
			ctx := context.WithValue(c.Request().Context(), i18n.LocaleContextKey, lang)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// supportedLanguages lists the loaded languages with the default first, which
// the matcher treats as its fallback
func supportedLanguages() []string {
	langs := []string{i18n.DefaultLanguage()}
	for _, l := range i18n.Languages() {
		if l != i18n.DefaultLanguage() {
			langs = append(langs, l)
		}
	}
	return langs
}

func setLanguageCookie(c echo.Context, lang string, secure bool) {
	cookie := new(http.Cookie)
	cookie.Name = langCookieName
	cookie.Value = lang
	cookie.Expires = time.Now().Add(24 * 365 * time.Hour) // 1 year
	cookie.Path = "/"
	cookie.HttpOnly = true
	cookie.SameSite = http.SameSiteLaxMode
	cookie.Secure = secure
	c.SetCookie(cookie)
}

// GetLocale returns the current locale from context
func GetLocale(c echo.Context) string {
	if lang, ok := c.Get("locale").(string); ok && lang != "" {
		return lang
	}
	return i18n.DefaultLanguage()
}
