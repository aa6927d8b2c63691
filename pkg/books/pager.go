package books

import (
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// defaultPager is used when neither the config file nor $PAGER names one.
const defaultPager = "less"

// Pager routes command output through an interactive pager when the
// destination is a terminal, and passes it straight through otherwise.
// Close must be called once the output is written.
type Pager struct {
	w    io.Writer
	cmd  *exec.Cmd
	pipe io.WriteCloser
}

// NewPager prepares a pager in front of out. command overrides $PAGER; when
// both are empty, "less" is used. When out is not a terminal or the pager
// cannot start, writes go directly to out.
func NewPager(out io.Writer, command string, log zerolog.Logger) *Pager {
	p := &Pager{w: out}

	f, ok := out.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return p
	}
	if command == "" {
		command = os.Getenv("PAGER")
	}
	if command == "" {
		command = defaultPager
	}
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return p
	}

	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdout = f
	cmd.Stderr = os.Stderr
	pipe, err := cmd.StdinPipe()
	if err != nil {
		log.Debug().Err(err).Msg("cannot pipe to pager, writing directly")
		return p
	}
	if err := cmd.Start(); err != nil {
		log.Debug().Err(err).Str("pager", parts[0]).Msg("cannot start pager, writing directly")
		return p
	}
	p.cmd = cmd
	p.pipe = pipe
	p.w = pipe
	return p
}

// Writer returns the destination output should be written to.
func (p *Pager) Writer() io.Writer {
	return p.w
}

// Close flushes the pager and waits for it to exit. It is a no-op when no
// pager was started.
func (p *Pager) Close() error {
	if p.cmd == nil {
		return nil
	}
	p.pipe.Close()
	return p.cmd.Wait()
}
