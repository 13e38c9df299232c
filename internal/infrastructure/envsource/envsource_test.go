package envsource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davarch/ci-env/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOS(t *testing.T) {
	t.Setenv("CI_ENV_TEST_KEY", "value")
	assert.Equal(t, "value", OS{}.Getenv("CI_ENV_TEST_KEY"))
}

func TestOverlay_FirstNonEmptyWins(t *testing.T) {
	env := Overlay{
		Map{"A": "top", "B": ""},
		domain.MockEnv{"A": "bottom", "B": "bottom", "C": "c"},
	}
	assert.Equal(t, "top", env.Getenv("A"))
	assert.Equal(t, "bottom", env.Getenv("B"))
	assert.Equal(t, "c", env.Getenv("C"))
	assert.Empty(t, env.Getenv("D"))
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ci.env")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nCIRCLECI=true\nCIRCLE_BRANCH=\"feature/x\"\n"), 0o644))

	m, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Map{"CIRCLECI": "true", "CIRCLE_BRANCH": "feature/x"}, m)

	// Parsed once: later edits do not change m.
	require.NoError(t, os.WriteFile(path, []byte("CIRCLECI=false\n"), 0o644))
	assert.Equal(t, "true", m.Getenv("CIRCLECI"))

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestMarshal(t *testing.T) {
	out, err := Marshal(map[string]string{"PERCY_BRANCH": "main", "PERCY_REPO_SLUG": "owner/repo"})
	require.NoError(t, err)
	assert.Contains(t, out, `PERCY_BRANCH="main"`)
	assert.Contains(t, out, `PERCY_REPO_SLUG="owner/repo"`)
}
