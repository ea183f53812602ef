package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvFile_Basic(t *testing.T) {
	data := []byte("KEY=value\nOTHER=stuff\n")
	m, err := ParseEnvFile(data)
	require.NoError(t, err)
	assert.Equal(t, "value", m["KEY"])
	assert.Equal(t, "stuff", m["OTHER"])
}

func TestParseEnvFile_CommentsAndBlanks(t *testing.T) {
	data := []byte("# comment\n\nKEY=value\n\nOTHER=stuff\n")
	m, err := ParseEnvFile(data)
	require.NoError(t, err)
	assert.Len(t, m, 2)
	assert.Equal(t, "value", m["KEY"])
	assert.Equal(t, "stuff", m["OTHER"])
}

func TestParseEnvFile_ValueWithEquals(t *testing.T) {
	data := []byte("URL=https://example.com?foo=bar&baz=qux\n")
	m, err := ParseEnvFile(data)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com?foo=bar&baz=qux", m["URL"])
}

func TestParseEnvFile_QuotesAndExport(t *testing.T) {
	data := []byte("export OLLAMA_HOST=gpu-box:11434\nGREETING=\"hello world\"\n")
	m, err := ParseEnvFile(data)
	require.NoError(t, err)
	assert.Equal(t, "gpu-box:11434", m["OLLAMA_HOST"])
	assert.Equal(t, "hello world", m["GREETING"])
}

func TestParseEnvFile_EmptyValue(t *testing.T) {
	data := []byte("KEY=\n")
	m, err := ParseEnvFile(data)
	require.NoError(t, err)
	assert.Equal(t, "", m["KEY"])
}

func TestLoadEnvFiles_ProjectOverridesGlobal(t *testing.T) {
	globalDir := filepath.Join(t.TempDir(), "triage")
	require.NoError(t, os.MkdirAll(globalDir, 0o755))
	globalFile := filepath.Join(globalDir, "env")
	require.NoError(t, os.WriteFile(globalFile, []byte("GLOBAL_ONLY=from_global\nSHARED=from_global\n"), 0o644))

	projectDir := t.TempDir()
	projectFile := filepath.Join(projectDir, ProjectEnvPath)
	require.NoError(t, os.WriteFile(projectFile, []byte("PROJECT_ONLY=from_project\nSHARED=from_project\n"), 0o644))

	merged := make(map[string]string)
	mergeEnvFile(merged, globalFile)
	mergeEnvFile(merged, projectFile)

	assert.Equal(t, "from_global", merged["GLOBAL_ONLY"])
	assert.Equal(t, "from_project", merged["PROJECT_ONLY"])
	assert.Equal(t, "from_project", merged["SHARED"], "project should override global")
}

func TestLoadEnvFiles_ActualEnvWins(t *testing.T) {
	projectDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, ProjectEnvPath),
		[]byte("TRIAGE_TEST_VAR=from_file\nTRIAGE_TEST_NEW=from_file\n"), 0o644))

	t.Setenv("TRIAGE_TEST_VAR", "from_actual_env")
	t.Setenv("TRIAGE_TEST_NEW", "")
	os.Unsetenv("TRIAGE_TEST_NEW")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(projectDir)

	LoadEnvFiles()

	assert.Equal(t, "from_actual_env", os.Getenv("TRIAGE_TEST_VAR"), "actual env should win over file")
	assert.Equal(t, "from_file", os.Getenv("TRIAGE_TEST_NEW"))
}

func TestMergeEnvFile_MissingFile(t *testing.T) {
	merged := make(map[string]string)
	mergeEnvFile(merged, "/nonexistent/path/.triage.env")
	assert.Empty(t, merged)
}

func TestGlobalEnvPath_ReturnsPath(t *testing.T) {
	p := GlobalEnvPath()
	assert.Contains(t, p, "triage")
	assert.True(t, filepath.IsAbs(p))
}
