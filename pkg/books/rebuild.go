package books

import (
	"context"
	"os/exec"
	"strings"
)

// Rebuilder regenerates the personal website after a successful mutation.
type Rebuilder interface {
	Rebuild(ctx context.Context) error
}

// MakeRebuilder rebuilds the website by running make in its directory.
type MakeRebuilder struct {
	// Dir is the directory holding the website's Makefile.
	Dir string
}

// Rebuild runs make and returns any failure with the tool's output attached.
func (r MakeRebuilder) Rebuild(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "make")
	cmd.Dir = r.Dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return wrapf(KindEnvironment, err, "make in %s: %s", r.Dir, msg)
		}
		return wrapf(KindEnvironment, err, "make in %s", r.Dir)
	}
	return nil
}
