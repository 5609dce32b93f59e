package cmd

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/djangodev/cli/internal/errors"
)

func TestBootstrap(t *testing.T) {
	cli := newTestCLI(t)

	_, err := cli.run("bootstrap")

	require.NoError(t, err)
	assert.Equal(t, []string{
		"python3 -m venv --symlinks /work/venvs/1.7",
		". /work/venvs/1.7/bin/activate && pip install -U django==1.7",
		"python3 -m venv --symlinks /work/venvs/1.6.5",
		". /work/venvs/1.6.5/bin/activate && pip install -U django==1.6.5",
		". /work/venvs/1.6.5/bin/activate && pip install -U south==1.0.1",
	}, cli.rec.Lines())

	exists, err := afero.DirExists(cli.fs, "/work/apps")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestBootstrap_ExistingEnvironmentIsSkipped(t *testing.T) {
	cli := newTestCLI(t, "venvs/1.7", "apps")

	_, err := cli.run("bootstrap")

	require.NoError(t, err)
	assert.NotContains(t, cli.rec.Lines(), "python3 -m venv --symlinks /work/venvs/1.7")
	assert.Contains(t, cli.rec.Lines(), ". /work/venvs/1.7/bin/activate && pip install -U django==1.7")
}

func TestListApps_RegeneratesBootstrapScript(t *testing.T) {
	cli := newTestCLI(t, "apps/sitecats", "apps/siteflags")

	_, err := cli.run("list_apps")

	require.NoError(t, err)
	content, err := afero.ReadFile(cli.fs, "/work/manage.py")
	require.NoError(t, err)
	assert.Contains(t, string(content), "'sitecats'")
	assert.Contains(t, string(content), "'siteflags'")
}

func TestListVenvs_NotBootstrapped(t *testing.T) {
	cli := newTestCLI(t)

	_, err := cli.run("list_venvs")

	assert.True(t, errors.Is(err, oerrors.ErrNotBootstrapped))
	assert.Equal(t, oerrors.ExitSuccess, ExitCodeFromError(err))
}

func TestAddMigrations(t *testing.T) {
	cli := newTestCLI(t, "venvs/1.7", "venvs/1.6.5", "apps/sitecats", "apps/siteflags")

	_, err := cli.run("add_migrations", "--apps", "siteflags")

	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"schemamigration", "siteflags", "--init"},
		{"makemigrations", "siteflags"},
	}, cli.rec.ManageArgs())
}

func TestAddMigrations_UnknownApplication(t *testing.T) {
	cli := newTestCLI(t, "venvs/1.7", "apps/sitecats")

	_, err := cli.run("add_migrations", "--apps", "sitecats,nope")

	assert.True(t, errors.Is(err, oerrors.ErrUnknownApplication))
	assert.Empty(t, cli.rec.Commands)
}

func TestMakeTrans(t *testing.T) {
	cli := newTestCLI(t, "venvs/1.7", "venvs/1.6.5", "apps/sitecats")

	_, err := cli.run("make_trans", "ru", "en")

	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"makemessages", "-l", "ru"},
		{"compilemessages", "-l", "ru"},
		{"makemessages", "-l", "en"},
		{"compilemessages", "-l", "en"},
	}, cli.rec.ManageArgs())
	for _, c := range cli.rec.Commands {
		assert.Equal(t, "/work/apps/sitecats", c.Dir)
	}
}

func TestVersion(t *testing.T) {
	cli := newTestCLI(t)

	out, err := cli.run("version")

	require.NoError(t, err)
	assert.Contains(t, out, "djdev CLI")
	assert.Contains(t, out, "Python:")
}

func TestBootstrap_PrintsWorkspaceTree(t *testing.T) {
	cli := newTestCLI(t)

	out, err := cli.run("bootstrap")

	require.NoError(t, err)
	assert.Contains(t, out, "work/")
	assert.Contains(t, out, "apps/")
	assert.Contains(t, out, "1.6.5/")
	assert.Contains(t, out, "south==1.0.1")
}

func TestAddMigrations_PrintsSummary(t *testing.T) {
	cli := newTestCLI(t, "venvs/1.7", "apps/sitecats")
	cli.rec.Fail = []string{"makemigrations"}

	out, err := cli.run("add_migrations")

	require.NoError(t, err, "failed steps do not fail the batch")
	assert.Contains(t, out, "makemigrations sitecats")
	assert.Contains(t, out, "failed")
}
