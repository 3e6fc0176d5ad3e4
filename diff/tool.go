package diff

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"

	"github.com/arloliu/rcsv/errs"
	"github.com/arloliu/rcsv/internal/options"
)

// ToolDiffer generates edit scripts by running the system diff tool in RCS
// mode. Both inputs are streamed to the child through anonymous pipes
// exposed as /dev/fd paths, so no temporary files touch the disk.
//
// It needs an OS that provides /dev/fd (Linux, the BSDs, macOS) and a diff
// implementation that understands -n (GNU diffutils does).
type ToolDiffer struct {
	command string
	args    []string
}

// ToolDifferOption configures a ToolDiffer.
type ToolDifferOption = options.Option[*ToolDiffer]

// WithCommand overrides the diff executable to run, either a name resolved
// through PATH or an absolute path.
func WithCommand(command string) ToolDifferOption {
	return options.New(func(d *ToolDiffer) error {
		if command == "" {
			return fmt.Errorf("%w: empty diff command", errs.ErrDiffTool)
		}
		d.command = command

		return nil
	})
}

// WithArgs replaces the argument list passed before the two input paths.
// The default is the single flag selecting RCS output.
func WithArgs(args ...string) ToolDifferOption {
	return options.NoError(func(d *ToolDiffer) {
		d.args = slices.Clone(args)
	})
}

// NewToolDiffer creates a Differ that runs the external diff tool.
//
// Parameters:
//   - opts: optional configuration; the default runs "diff -n"
//
// Returns:
//   - the configured ToolDiffer, or an error from an invalid option
func NewToolDiffer(opts ...ToolDifferOption) (*ToolDiffer, error) {
	d := &ToolDiffer{
		command: "diff",
		args:    []string{"-n"},
	}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Diff implements Differ. The two texts are fed concurrently by one writer
// goroutine each while the caller's goroutine drains the tool's output;
// feeding sequentially instead could deadlock once a text outgrows the pipe
// buffer. Both writers are joined before Diff returns.
func (d *ToolDiffer) Diff(old, new string) (string, error) {
	oldR, oldW, err := os.Pipe()
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrDiffTool, err)
	}
	newR, newW, err := os.Pipe()
	if err != nil {
		oldR.Close()
		oldW.Close()

		return "", fmt.Errorf("%w: %v", errs.ErrDiffTool, err)
	}

	// ExtraFiles start at descriptor 3 in the child.
	args := append(slices.Clone(d.args), "/dev/fd/3", "/dev/fd/4")
	cmd := exec.Command(d.command, args...)
	cmd.ExtraFiles = []*os.File{oldR, newR}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		oldR.Close()
		oldW.Close()
		newR.Close()
		newW.Close()

		return "", fmt.Errorf("%w: starting %s: %v", errs.ErrDiffTool, d.command, err)
	}

	// The child owns its copies now.
	oldR.Close()
	newR.Close()

	feed := func(w *os.File, text string) <-chan error {
		done := make(chan error, 1)
		go func() {
			_, werr := w.WriteString(text)
			if cerr := w.Close(); werr == nil {
				werr = cerr
			}
			done <- werr
		}()

		return done
	}
	oldDone := feed(oldW, old)
	newDone := feed(newW, new)

	waitErr := cmd.Wait()
	oldErr := <-oldDone
	newErr := <-newDone

	if waitErr != nil {
		// Exit status 1 means differences were found, which is the point.
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) || exitErr.ExitCode() != 1 {
			return "", fmt.Errorf("%w: %s: %v: %s", errs.ErrDiffTool, d.command, waitErr, bytes.TrimSpace(stderr.Bytes()))
		}
	}
	if oldErr != nil {
		return "", fmt.Errorf("%w: feeding old text: %v", errs.ErrDiffTool, oldErr)
	}
	if newErr != nil {
		return "", fmt.Errorf("%w: feeding new text: %v", errs.ErrDiffTool, newErr)
	}

	return stdout.String(), nil
}
