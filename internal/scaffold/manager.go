package scaffold

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultProjectName is substituted for %NAME% when no project name is given.
const DefaultProjectName = "Project"

// Options configures a Manager.
type Options struct {
	ProjectName string
	Author      string
	Email       string
	// Bundled holds the built-in templates, one directory per template at
	// its root. Nil disables the bundled source.
	Bundled fs.FS
	// SearchPaths are directories searched after the bundled templates, in
	// order.
	SearchPaths []string
	// Out receives dry-run output and save confirmations. Defaults to
	// os.Stdout.
	Out io.Writer
	// Now returns the current time; used for %YEAR%.
	Now func() time.Time
}

// Manager resolves templates across an ordered list of sources and renders
// text for them.
type Manager struct {
	projectName string
	author      string
	email       string
	sources     []Source
	out         io.Writer
	now         func() time.Time
}

// NewManager creates a manager. The bundled source comes first, followed
// by one PathSource per search path.
func NewManager(opts Options) *Manager {
	m := &Manager{
		projectName: opts.ProjectName,
		author:      opts.Author,
		email:       opts.Email,
		out:         opts.Out,
		now:         opts.Now,
	}
	if m.out == nil {
		m.out = os.Stdout
	}
	if m.now == nil {
		m.now = time.Now
	}
	if opts.Bundled != nil {
		m.AddSource(NewResourceSource(m, opts.Bundled, "."))
	}
	for _, p := range opts.SearchPaths {
		m.AddSource(NewPathSource(m, p))
	}
	return m
}

// AddSource appends a source; earlier sources win on name lookups.
func (m *Manager) AddSource(s Source) { m.sources = append(m.sources, s) }

// Sources returns the sources in lookup order.
func (m *Manager) Sources() []Source { return append([]Source(nil), m.sources...) }

// ProjectName returns the value substituted for %NAME%.
func (m *Manager) ProjectName() string {
	if m.projectName == "" {
		return DefaultProjectName
	}
	return m.projectName
}

// AllTemplates returns every template from every source. When several
// sources provide the same name only the first is kept. Unreadable sources
// are skipped.
func (m *Manager) AllTemplates() []*Template {
	seen := make(map[string]bool)
	var result []*Template
	for _, src := range m.sources {
		templates, err := src.Templates()
		if err != nil {
			log.Debug().Str("source", src.Name()).Err(err).Msg("skipping source")
			continue
		}
		for _, t := range templates {
			if !seen[t.name] {
				seen[t.name] = true
				result = append(result, t)
			}
		}
	}
	return result
}

// GetTemplate returns the first template called name across sources.
func (m *Manager) GetTemplate(name string) (*Template, bool) {
	for _, src := range m.sources {
		if t, ok := Lookup(src, name); ok {
			return t, true
		}
	}
	return nil, false
}

// Template is GetTemplate returning ErrNotFound when nothing matches.
func (m *Manager) Template(name string) (*Template, error) {
	t, ok := m.GetTemplate(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return t, nil
}

// Tokens returns the substitution table for t in insertion order: the
// built-in EMAIL, AUTHOR, YEAR and NAME followed by the template's
// arguments. When two entries share a token name the last one wins.
func (m *Manager) Tokens(t *Template) ([]string, map[string]string) {
	var order []string
	values := make(map[string]string)
	set := func(key, value string) {
		key = strings.ToUpper(key)
		if _, ok := values[key]; !ok {
			order = append(order, key)
		}
		values[key] = value
	}

	set("EMAIL", m.email)
	set("AUTHOR", m.author)
	set("YEAR", m.now().Format("2006"))
	set("NAME", m.ProjectName())
	if t != nil {
		for _, a := range t.Args().All() {
			set(a.Name(), a.Value())
		}
	}
	return order, values
}

// Render replaces every %KEY% in text whose KEY matches, case-insensitively,
// an entry of the substitution table. Unknown tokens are left untouched.
func (m *Manager) Render(text string, t *Template) string {
	order, values := m.Tokens(t)
	if len(order) == 0 || !strings.Contains(text, "%") {
		return text
	}
	quoted := make([]string, len(order))
	for i, key := range order {
		quoted[i] = regexp.QuoteMeta(key)
	}
	re := regexp.MustCompile(`(?i)%(` + strings.Join(quoted, "|") + `)%`)
	return re.ReplaceAllStringFunc(text, func(tok string) string {
		if v, ok := values[strings.ToUpper(tok[1:len(tok)-1])]; ok {
			return v
		}
		return tok
	})
}
