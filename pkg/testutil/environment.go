package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/itemexpr/pkg/inventory"
	"github.com/arthur-debert/itemexpr/pkg/types"
)

// TestEnvironment is a temp directory with the XDG base directories pointed
// inside it, so nothing reads or writes the real user config.
type TestEnvironment struct {
	Dir       string
	ConfigDir string
	StateDir  string

	t *testing.T
}

// NewTestEnvironment creates a new test environment. The XDG paths are
// restored when the test ends.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	dir := t.TempDir()
	env := &TestEnvironment{
		Dir:       dir,
		ConfigDir: filepath.Join(dir, "config"),
		StateDir:  filepath.Join(dir, "state"),
		t:         t,
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigDir)
	t.Setenv("XDG_STATE_HOME", env.StateDir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return env
}

// Path returns the absolute path of name inside the environment.
func (env *TestEnvironment) Path(name string) string {
	return filepath.Join(env.Dir, name)
}

// WriteFile writes content to name, creating parent directories, and
// returns its path.
func (env *TestEnvironment) WriteFile(name, content string) string {
	env.t.Helper()
	path := env.Path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write file %s: %v", path, err)
	}
	return path
}

// WithFileTree creates a complete file tree structure
func (env *TestEnvironment) WithFileTree(tree FileTree) {
	env.t.Helper()
	createFileTree(env.t, env.Dir, tree)
}

// WriteUserConfig writes the itemexpr config file where config.Load looks
// for it.
func (env *TestEnvironment) WriteUserConfig(content string) string {
	env.t.Helper()
	rel, err := filepath.Rel(env.Dir, filepath.Join(env.ConfigDir, "itemexpr", "config.toml"))
	if err != nil {
		env.t.Fatalf("Failed to locate config dir: %v", err)
	}
	return env.WriteFile(rel, content)
}

// WriteInventory writes an inventory document holding stacks, one per slot.
// A nil stack is an empty slot. The format follows the extension of name.
func (env *TestEnvironment) WriteInventory(name string, stacks ...*types.Resource) string {
	env.t.Helper()
	path := env.Path(name)
	if err := inventory.WriteDocument(path, inventory.DocumentOf(inventory.FromStacks(stacks...))); err != nil {
		env.t.Fatalf("Failed to write inventory %s: %v", path, err)
	}
	return path
}

// Amounts reads an inventory document back and returns its slot amounts.
func (env *TestEnvironment) Amounts(path string) []int {
	env.t.Helper()
	doc, err := inventory.ReadDocument(path)
	if err != nil {
		env.t.Fatalf("Failed to read inventory %s: %v", path, err)
	}
	c, err := doc.Container()
	if err != nil {
		env.t.Fatalf("Invalid inventory %s: %v", path, err)
	}
	return c.Amounts()
}

// FileTree represents a directory structure for testing. Values are file
// contents or nested trees.
type FileTree map[string]interface{}

func createFileTree(t *testing.T, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := os.WriteFile(fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			if err := os.MkdirAll(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			createFileTree(t, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
