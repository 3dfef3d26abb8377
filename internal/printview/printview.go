// Package printview renders the printable employee table: the dashboard
// table without its actions column.
package printview

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"employee-admin/internal/employee"
)

//go:embed templates/print.html
var tplFS embed.FS

var tpl = template.Must(template.ParseFS(tplFS, "templates/print.html"))

type row struct {
	ID       int64
	Image    template.URL
	Name     string
	Gender   employee.Gender
	DOB      string
	State    employee.State
	IsActive bool
}

// Render writes the HTML page for list.
func Render(w io.Writer, list []employee.Employee) error {
	rows := make([]row, 0, len(list))
	for _, e := range list {
		rows = append(rows, row{
			ID:       e.ID,
			Image:    imageURL(e.Image),
			Name:     e.Name,
			Gender:   e.Gender,
			DOB:      e.DOB,
			State:    e.State,
			IsActive: e.IsActive,
		})
	}
	return tpl.ExecuteTemplate(w, "print.html", struct{ Rows []row }{rows})
}

// imageURL lets inline image data URLs through the template's URL filter.
// Anything else is dropped.
func imageURL(s string) template.URL {
	if strings.HasPrefix(s, "data:image/") && !strings.ContainsAny(s, `"'<> `) {
		return template.URL(s)
	}
	return ""
}
