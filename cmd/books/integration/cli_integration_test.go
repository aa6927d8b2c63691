// cli_integration_test.go
package integration

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var cliBinary string

// TestMain builds the books binary once for all integration tests.
func TestMain(m *testing.M) {
	binaryPath := filepath.Join(os.TempDir(), "books-integration")
	buildCmd := exec.Command("go", "build", "-o", binaryPath, "../")
	buildCmd.Stdout = os.Stdout
	buildCmd.Stderr = os.Stderr
	if err := buildCmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build books binary: %v\n", err)
		os.Exit(1)
	}
	cliBinary = binaryPath

	code := m.Run()

	os.Remove(cliBinary)
	os.Exit(code)
}

// runBooks runs the built binary with the per-user directories sandboxed
// under home, and returns the combined output and exit code.
func runBooks(t *testing.T, home string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(cliBinary, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"XDG_DATA_HOME="+filepath.Join(home, ".local", "share"),
		"XDG_CONFIG_HOME="+filepath.Join(home, ".config"),
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("running books %v: %v", args, err)
		}
		return string(out), exitErr.ExitCode()
	}
	return string(out), 0
}

// mustBooks fails the test unless the command exits 0.
func mustBooks(t *testing.T, home string, args ...string) string {
	t.Helper()
	out, code := runBooks(t, home, args...)
	if code != 0 {
		t.Fatalf("books %v exited %d:\n%s", args, code, out)
	}
	return out
}

// TestLifecycleChain drives one book through the default per-user data
// directory, without a --database override.
func TestLifecycleChain(t *testing.T) {
	home := t.TempDir()

	mustBooks(t, home, "add", "Dune", "Frank Herbert")

	// The data directory must exist with owner-only permissions.
	dataDir := filepath.Join(home, ".local", "share", "books")
	info, err := os.Stat(dataDir)
	if err != nil {
		t.Fatalf("data directory not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o700 {
		t.Errorf("expected data directory mode 0700, got %o", perm)
	}
	if _, err := os.Stat(filepath.Join(dataDir, "database.sqlite3")); err != nil {
		t.Fatalf("database file not created: %v", err)
	}

	out := mustBooks(t, home, "ls")
	if out != "Dune\n" {
		t.Errorf("expected unstarted list with Dune, got:\n%s", out)
	}

	mustBooks(t, home, "start", "Dune")
	out = mustBooks(t, home, "ls", "--started")
	if out != "Dune\n" {
		t.Errorf("expected started list with Dune, got:\n%s", out)
	}

	mustBooks(t, home, "finish", "Dune")
	out = mustBooks(t, home, "ls", "--finished")
	if out != "Dune\n" {
		t.Errorf("expected finished list with Dune, got:\n%s", out)
	}

	today := time.Now().Format("2006-01-02")
	out = mustBooks(t, home, "show", "Dune")
	for _, want := range []string{
		"Title: Dune\n",
		"Started: " + today + "\n",
		"Finished: " + today + "\n",
		"Authors: Frank Herbert\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}

	mustBooks(t, home, "mv", "Dune", "Dune Messiah")
	out = mustBooks(t, home, "show", "Dune Messiah")
	if !strings.Contains(out, "Authors: Frank Herbert\n") {
		t.Errorf("authors did not follow the rename:\n%s", out)
	}
}

// TestRenderChain checks both render views against a seeded database.
func TestRenderChain(t *testing.T) {
	home := t.TempDir()

	mustBooks(t, home, "add", "Good Omens", "Terry Pratchett", "Neil Gaiman")
	mustBooks(t, home, "add", "Dune", "Frank Herbert")
	mustBooks(t, home, "finish", "Dune")

	out := mustBooks(t, home, "render")
	if out != "<li><em>Good Omens</em> by Neil Gaiman and Terry Pratchett</li>\n" {
		t.Errorf("unexpected render output:\n%s", out)
	}

	date := time.Now().Format("January 2, 2006")
	out = mustBooks(t, home, "render", "--complete")
	if out != "<li><em>Dune</em> by Frank Herbert ("+date+")</li>\n" {
		t.Errorf("unexpected render --complete output:\n%s", out)
	}
}

// TestWebsiteRebuild wires WEBSITE_DIR through the default config file
// location and checks that mutations run make there, and that a failing
// make never fails the command.
func TestWebsiteRebuild(t *testing.T) {
	if _, err := exec.LookPath("make"); err != nil {
		t.Skip("make not installed")
	}
	home := t.TempDir()
	site := filepath.Join(home, "website")
	if err := os.MkdirAll(site, 0o755); err != nil {
		t.Fatalf("creating website dir: %v", err)
	}

	cfgDir := filepath.Join(home, ".config", "books")
	if err := os.MkdirAll(cfgDir, 0o700); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	cfg := "WEBSITE_DIR=" + site + "\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.env"), []byte(cfg), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	makefile := "all:\n\ttouch marker\n"
	if err := os.WriteFile(filepath.Join(site, "Makefile"), []byte(makefile), 0o644); err != nil {
		t.Fatalf("writing Makefile: %v", err)
	}

	mustBooks(t, home, "add", "Dune", "Frank Herbert")
	if _, err := os.Stat(filepath.Join(site, "marker")); err != nil {
		t.Errorf("expected make to run in the website directory: %v", err)
	}

	// A broken Makefile must only produce a warning.
	makefile = "all:\n\t@echo rebuild exploded; exit 1\n"
	if err := os.WriteFile(filepath.Join(site, "Makefile"), []byte(makefile), 0o644); err != nil {
		t.Fatalf("writing Makefile: %v", err)
	}
	out, code := runBooks(t, home, "start", "Dune")
	if code != 0 {
		t.Errorf("expected exit 0 despite rebuild failure, got %d:\n%s", code, out)
	}
	if !strings.Contains(out, "website rebuild failed") {
		t.Errorf("expected rebuild warning, got:\n%s", out)
	}

	// The mutation itself must have been kept.
	show := mustBooks(t, home, "show", "Dune")
	if !strings.Contains(show, "Started: ") {
		t.Errorf("start was rolled back with the rebuild failure:\n%s", show)
	}
}

// TestExitCodes pins the exit code contract of the built binary.
func TestExitCodes(t *testing.T) {
	home := t.TempDir()

	if _, code := runBooks(t, home, "add", "OnlyTitle"); code != 2 {
		t.Errorf("usage error: expected exit 2, got %d", code)
	}
	if _, code := runBooks(t, home, "start", "absent"); code != 1 {
		t.Errorf("not found: expected exit 1, got %d", code)
	}
	if _, code := runBooks(t, home, "ls"); code != 0 {
		t.Errorf("success: expected exit 0, got %d", code)
	}
}
