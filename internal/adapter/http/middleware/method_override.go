package middleware

import (
	"mime"
	"net/http"
	"strings"
)

const methodOverrideField = "_method"

// MethodOverride lets HTML forms, which can only POST, reach PUT, PATCH and
// DELETE routes through a hidden _method field or the X-HTTP-Method-Override
// header. It wraps the engine because gin matches routes before middleware runs.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if method := overrideMethod(r); method != "" {
				r.Method = method
			}
		}
		next.ServeHTTP(w, r)
	})
}

func overrideMethod(r *http.Request) string {
	method := r.Header.Get("X-HTTP-Method-Override")
	if method == "" && isURLEncodedForm(r) {
		if err := r.ParseForm(); err == nil {
			method = r.PostForm.Get(methodOverrideField)
		}
	}

	switch method = strings.ToUpper(strings.TrimSpace(method)); method {
	case http.MethodPut, http.MethodPatch, http.MethodDelete:
		return method
	}
	return ""
}

func isURLEncodedForm(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/x-www-form-urlencoded"
}
