package templates

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_ContainsApplications(t *testing.T) {
	out, err := Render(BootstrapData{
		AppsPath: "/work/apps",
		Apps:     []string{"siteflags", "sitecats"},
	})
	require.NoError(t, err)
	script := string(out)

	assert.Contains(t, script, "sys.path = ['/work/apps'] + sys.path")
	assert.Contains(t, script, "import south")
	assert.Contains(t, script, "INSTALLED_APPS=INSTALLED_APPS + south + ('siteflags', 'sitecats'),")
	assert.Contains(t, script,
		"SOUTH_MIGRATION_MODULES={'siteflags': 'siteflags.south_migrations', 'sitecats': 'sitecats.south_migrations'},")
	assert.Contains(t, script, "'ENGINE': 'django.db.backends.sqlite3'")
	assert.Contains(t, script, "if not settings.configured:")
	assert.Contains(t, script, "execute_from_command_line(sys.argv)")

	for _, contrib := range ContribApps {
		assert.Contains(t, script, "'"+contrib+"',")
	}
}

func TestRender_SingleApplicationTuple(t *testing.T) {
	out, err := Render(BootstrapData{AppsPath: "/w/apps", Apps: []string{"sitecats"}})
	require.NoError(t, err)

	assert.Contains(t, string(out), "south + ('sitecats',),")
}

func TestRender_IsIdempotent(t *testing.T) {
	data := BootstrapData{AppsPath: "/work/apps", Apps: []string{"a", "b", "c"}}

	first, err := Render(data)
	require.NoError(t, err)
	second, err := Render(data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_QuotesPaths(t *testing.T) {
	out, err := Render(BootstrapData{AppsPath: `/home/o'brien/apps`, Apps: []string{"a"}})
	require.NoError(t, err)

	assert.Contains(t, string(out), `sys.path = ['/home/o\'brien/apps'] + sys.path`)
}

func TestPyLiterals(t *testing.T) {
	assert.Equal(t, "()", pyTuple(nil))
	assert.Equal(t, "('a',)", pyTuple([]string{"a"}))
	assert.Equal(t, "('a', 'b')", pyTuple([]string{"a", "b"}))
	assert.Equal(t, "{}", pyDict(nil))
	assert.Equal(t, "{'a': 'a.south_migrations'}", pyDict(legacyModules([]string{"a"})))
	assert.Equal(t, `'a\\b'`, pyQuote(`a\b`))
}

func TestIsImportableName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"sitecats", true},
		{"_private", true},
		{"app2", true},
		{"django-sitecats", false},
		{"2fa", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsImportableName(tt.name))
		})
	}
}

func TestGenerator_WriteOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/manage.py", []byte("# hand edited"), 0o644))

	gen := NewGenerator(fs, "/work/manage.py", "/work/apps")
	require.NoError(t, gen.Write([]string{"sitecats"}))

	content, err := afero.ReadFile(fs, "/work/manage.py")
	require.NoError(t, err)
	assert.NotContains(t, string(content), "hand edited")
	assert.Contains(t, string(content), "'sitecats'")
	assert.Equal(t, "/work/manage.py", gen.Path())

	want, err := Render(BootstrapData{AppsPath: "/work/apps", Apps: []string{"sitecats"}})
	require.NoError(t, err)
	assert.Equal(t, want, content)
}
