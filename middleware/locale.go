package middleware

import "github.com/gin-gonic/gin"

// LocaleKey is the gin context key carrying the request locale.
const LocaleKey = "locale"

var supportedLocales = map[string]bool{"ja": true, "en": true}

// LocaleMiddleware reads the x-locale header sent by the site frontend and
// stores a validated locale on the context. Unknown values fall back to
// Japanese, the site's default.
func LocaleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := c.GetHeader("x-locale")
		if !supportedLocales[locale] {
			locale = "ja"
		}
		c.Set(LocaleKey, locale)
		c.Next()
	}
}

// Locale returns the validated locale stored by LocaleMiddleware.
func Locale(c *gin.Context) string {
	if locale, ok := c.Get(LocaleKey); ok {
		if s, ok := locale.(string); ok {
			return s
		}
	}
	return "ja"
}
