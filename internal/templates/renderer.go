package templates

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// bootstrapTmpl is parsed once; the embedded template never changes at runtime.
var bootstrapTmpl = template.Must(
	template.New("manage.py.tmpl").Funcs(template.FuncMap{
		"pyquote":       pyQuote,
		"pytuple":       pyTuple,
		"pydict":        pyDict,
		"legacyModules": legacyModules,
	}).ParseFS(TemplateFS, BootstrapTemplate),
)

// Render renders the bootstrap script. Output is a pure function of data.
func Render(data BootstrapData) ([]byte, error) {
	if data.ContribApps == nil {
		data.ContribApps = ContribApps
	}

	var buf bytes.Buffer
	if err := bootstrapTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

// pyQuote renders s as a single-quoted Python string literal.
func pyQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`)
	return "'" + r.Replace(s) + "'"
}

// pyTuple renders a tuple literal of strings: () / ('a',) / ('a', 'b').
func pyTuple(items []string) string {
	switch len(items) {
	case 0:
		return "()"
	case 1:
		return "(" + pyQuote(items[0]) + ",)"
	}

	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = pyQuote(item)
	}
	return "(" + strings.Join(quoted, ", ") + ")"
}

// pyDict renders a dict literal of string pairs, keeping their order.
func pyDict(pairs [][2]string) string {
	entries := make([]string, len(pairs))
	for i, p := range pairs {
		entries[i] = pyQuote(p[0]) + ": " + pyQuote(p[1])
	}
	return "{" + strings.Join(entries, ", ") + "}"
}

// legacyModules maps every application to its legacy migrations package.
func legacyModules(apps []string) [][2]string {
	pairs := make([][2]string, len(apps))
	for i, app := range apps {
		pairs[i] = [2]string{app, app + ".south_migrations"}
	}
	return pairs
}
