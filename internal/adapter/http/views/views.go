package views

import (
	"embed"
	"html/template"
	"time"

	"tasktracker/internal/core/domain"
)

//go:embed templates/*.html
var templates embed.FS

const dueLayout = "2 January 2006 at 15:04"

// Load parses the page templates. Pages are addressed by file name, e.g.
// "tasks.html".
func Load() (*template.Template, error) {
	return template.New("views").Funcs(Funcs()).ParseFS(templates, "templates/*.html")
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"formatDue":     FormatDue,
		"statusLabel":   func(s domain.TaskStatus) string { return s.Label() },
		"statuses":      func() []domain.TaskStatus { return domain.TaskStatuses },
		"statusChecked": StatusChecked,
	}
}

func FormatDue(t time.Time) string {
	return t.UTC().Format(dueLayout)
}

// StatusChecked reports whether a submitted status value selects option s.
func StatusChecked(raw string, s domain.TaskStatus) bool {
	return domain.NormalizeTaskStatus(raw) == s
}
