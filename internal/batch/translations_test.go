package batch

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/djangodev/cli/internal/errors"
)

func TestMakeTranslations_ExplicitLocales(t *testing.T) {
	d, fs, m := newTestDriver(t, "venvs/1.7", "venvs/1.6.5", "apps/sitecats", "apps/siteflags")

	err := d.MakeTranslations([]string{"ru", "en"}, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"makemessages -l ru", "compilemessages -l ru",
		"makemessages -l en", "compilemessages -l en",
		"makemessages -l ru", "compilemessages -l ru",
		"makemessages -l en", "compilemessages -l en",
	}, m.lines())

	for _, c := range m.calls {
		assert.Equal(t, "/work/venvs/1.7", c.env, "only the default environment is used")
		assert.True(t, c.verbose)
	}
	assert.Equal(t, "/work/apps/sitecats", m.calls[0].dir)
	assert.Equal(t, "/work/apps/siteflags", m.calls[4].dir)

	for _, p := range []string{
		"/work/apps/sitecats/locale/ru/LC_MESSAGES",
		"/work/apps/siteflags/locale/en/LC_MESSAGES",
	} {
		exists, err := afero.DirExists(fs, p)
		require.NoError(t, err)
		assert.True(t, exists, p)
	}
}

func TestMakeTranslations_ExtractsBeforeCompiling(t *testing.T) {
	d, fs, m := newTestDriver(t, "venvs/1.7", "apps/sitecats")
	m.onRun = func(call manageCall) {
		if call.args[0] == "compilemessages" {
			exists, _ := afero.DirExists(fs, "/work/apps/sitecats/locale/de/LC_MESSAGES")
			assert.True(t, exists, "messages dir exists before compiling")
		}
	}

	require.NoError(t, d.MakeTranslations([]string{"de"}, nil))

	assert.Equal(t, []string{"makemessages -l de", "compilemessages -l de"}, m.lines())
}

func TestMakeTranslations_DiscoversLocales(t *testing.T) {
	d, fs, m := newTestDriver(t, "venvs/1.7",
		"apps/sitecats/locale/ru", "apps/sitecats/locale/de")
	writeFile(t, fs, "apps/sitecats/locale/README", "not a locale")

	require.NoError(t, d.MakeTranslations(nil, nil))

	assert.Equal(t, []string{
		"makemessages -l de", "compilemessages -l de",
		"makemessages -l ru", "compilemessages -l ru",
	}, m.lines())
}

func TestMakeTranslations_DiscoveredLocalesCarryOver(t *testing.T) {
	d, _, m := newTestDriver(t, "venvs/1.7",
		"apps/alpha",
		"apps/beta/locale/ru",
		"apps/gamma/locale/de")

	require.NoError(t, d.MakeTranslations(nil, nil))

	// alpha has no locales yet; beta's locales are then reused for gamma.
	require.Len(t, m.calls, 4)
	assert.Equal(t, "/work/apps/beta", m.calls[0].dir)
	assert.Equal(t, "/work/apps/gamma", m.calls[2].dir)
	assert.Equal(t, []string{
		"makemessages -l ru", "compilemessages -l ru",
		"makemessages -l ru", "compilemessages -l ru",
	}, m.lines())
}

func TestMakeTranslations_AppFilter(t *testing.T) {
	d, _, m := newTestDriver(t, "venvs/1.7", "apps/sitecats", "apps/siteflags")

	require.NoError(t, d.MakeTranslations([]string{"ru"}, []string{"siteflags"}))

	require.Len(t, m.calls, 2)
	assert.Equal(t, "/work/apps/siteflags", m.calls[0].dir)
}

func TestMakeTranslations_FailedCommandDoesNotHalt(t *testing.T) {
	d, _, m := newTestDriver(t, "venvs/1.7", "apps/sitecats")
	m.fail["makemessages"] = true

	err := d.MakeTranslations([]string{"ru", "en"}, nil)

	require.NoError(t, err)
	assert.Len(t, m.calls, 4)
}

func TestMakeTranslations_Preconditions(t *testing.T) {
	tests := []struct {
		name string
		dirs []string
		apps []string
		want error
	}{
		{name: "no environments checked before apps", dirs: nil, want: oerrors.ErrNotBootstrapped},
		{name: "no apps dir", dirs: []string{"venvs/1.7"}, want: oerrors.ErrNotInitialized},
		{name: "empty apps dir", dirs: []string{"venvs/1.7", "apps"}, want: oerrors.ErrNoApplications},
		{name: "unknown app", dirs: []string{"venvs/1.7", "apps/sitecats"}, apps: []string{"nope"}, want: oerrors.ErrUnknownApplication},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _, m := newTestDriver(t, tt.dirs...)

			err := d.MakeTranslations([]string{"ru"}, tt.apps)

			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.True(t, errors.Is(err, oerrors.ErrOperation))
			assert.Empty(t, m.calls)
		})
	}
}
