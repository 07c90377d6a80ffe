package gpp

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/alnah/go-gpp/internal/shell"
)

// pipedChild is one open #in child process. Its stdin receives every
// line produced inside the block; its stdout is only drained once, at
// #endin. A child that fills the OS pipe buffer before then deadlocks
// the run; the design accepts that rather than buffering output
// concurrently.
type pipedChild struct {
	command string
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	stdout  io.ReadCloser
}

// cmdIn spawns the argument through the platform shell with piped
// stdin and stdout and pushes it onto the pipe stack. It produces no
// immediate output; subsequent lines are routed into the child until
// the matching #endin.
func cmdIn(ctx *Context, arg string) (string, error) {
	child, err := startPipedChild(arg)
	if err != nil {
		return "", err
	}
	ctx.pipes = append(ctx.pipes, child)
	return "", nil
}

// cmdEndin pops the innermost #in child, closes its input, waits for
// it to exit, and uses its captured output as the line's output. When
// #in blocks nest, that output is routed onward into the enclosing
// child like any other line.
func cmdEndin(ctx *Context, arg string) (string, error) {
	if arg != "" {
		return "", fmt.Errorf("%w: endin", ErrTooManyParameters)
	}
	if len(ctx.pipes) == 0 {
		return "", fmt.Errorf("%w: endin without open #in", ErrUnexpectedCommand)
	}
	child := ctx.pipes[len(ctx.pipes)-1]
	ctx.pipes = ctx.pipes[:len(ctx.pipes)-1]
	return child.drain()
}

func startPipedChild(command string) (*pipedChild, error) {
	cmd := shell.Command(command)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdin: %v", ErrPipeSetup, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdout: %v", ErrPipeSetup, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %q: %w", command, err)
	}
	return &pipedChild{command: command, cmd: cmd, stdin: stdin, stdout: stdout}, nil
}

// write sends already-processed text to the child's input.
func (p *pipedChild) write(text string) error {
	if _, err := io.WriteString(p.stdin, text); err != nil {
		return fmt.Errorf("writing to %q: %w", p.command, err)
	}
	return nil
}

// drain closes the child's input, reads all of its output, and reaps
// it, applying the same exit-status and UTF-8 checks as #exec.
func (p *pipedChild) drain() (string, error) {
	if err := p.stdin.Close(); err != nil {
		_ = p.cmd.Wait()
		return "", fmt.Errorf("closing input of %q: %w", p.command, err)
	}
	out, err := io.ReadAll(p.stdout)
	if err != nil {
		_ = p.cmd.Wait()
		return "", fmt.Errorf("reading output of %q: %w", p.command, err)
	}
	if err := p.cmd.Wait(); err != nil {
		return "", childWaitError(p.command, err)
	}
	return decodeChildOutput(out)
}

// abandon force-releases a child that never saw its #endin. Used by
// Context.Close; the child's output is lost.
func (p *pipedChild) abandon() {
	_ = p.stdin.Close()
	if p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
	_ = p.cmd.Wait()
}
