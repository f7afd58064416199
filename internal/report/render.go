package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"regexp"

	"boxdstats/internal/fileutil"
)

//go:embed page.html.tmpl
var pageTemplate string

var cssColour = regexp.MustCompile(`^(#[0-9A-Fa-f]{3,8}|[A-Za-z]+|rgba?\([0-9., ]+\))$`)

var page = template.Must(template.New("report").Funcs(template.FuncMap{
	"css": func(value string) template.CSS {
		if !cssColour.MatchString(value) {
			return template.CSS("inherit")
		}
		return template.CSS(value)
	},
}).Parse(pageTemplate))

// Render writes the HTML page for doc to w.
func Render(w io.Writer, doc *Document) error {
	if doc == nil {
		return fmt.Errorf("document is required")
	}
	if err := page.Execute(w, doc); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// Write renders doc to path, replacing any existing file atomically.
func Write(path string, doc *Document) error {
	var buf bytes.Buffer
	if err := Render(&buf, doc); err != nil {
		return err
	}
	if err := fileutil.WriteAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Exists reports whether a report is already present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
