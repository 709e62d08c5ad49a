// Package testutil provides utilities for testing itemexpr components.
//
// Key components:
//   - TestEnvironment: a temp directory with isolated XDG paths
//   - FileTree: declarative file setup
//   - Fixtures: ready-made stacks and owner identities
//
// Usage guidelines:
//   - All test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil
