package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"path"
)

const (
	baseTemplate     = "base.html"
	partialsTemplate = "partials.html"
	tmplDir          = "templates"
)

func dict(values ...any) (map[string]any, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("invalid dict call: number of arguments must be even")
	}
	m := make(map[string]any, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict keys must be strings")
		}
		m[key] = values[i+1]
	}
	return m, nil
}

// LoadTemplates parses every page under templates/ together with the base
// layout and the shared partials, keyed by page file name.
func LoadTemplates(fsys fs.FS) (map[string]*template.Template, error) {
	entries, err := fs.ReadDir(fsys, tmplDir)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}

	templates := make(map[string]*template.Template)
	for _, e := range entries {
		name := e.Name()
		if path.Ext(name) != ".html" || name == baseTemplate || name == partialsTemplate {
			continue
		}
		tmpl, err := template.New(baseTemplate).
			Funcs(template.FuncMap{"dict": dict}).
			ParseFS(fsys,
				path.Join(tmplDir, baseTemplate),
				path.Join(tmplDir, partialsTemplate),
				path.Join(tmplDir, name),
			)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return templates, nil
}
