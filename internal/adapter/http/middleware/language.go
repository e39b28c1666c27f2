package middleware

import (
	"tasktracker/pkg/translator"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

var languageMatcher = language.NewMatcher([]language.Tag{
	language.English, // first entry is the fallback
	language.French,
})

// LanguageMiddleware is a Gin middleware that sets the language based on the Accept-Language header.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", matchLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func matchLanguage(header string) string {
	if header == "" {
		return translator.LanguageEn
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return translator.LanguageEn
	}
	tag, _, _ := languageMatcher.Match(tags...)
	base, _ := tag.Base()
	return base.String()
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
