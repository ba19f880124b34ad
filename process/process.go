// Package process spawns a child program, either behind a pty or over
// plain stdio pipes, and mirrors its output into a vtty.ByteSource as it
// arrives. A single forwarder goroutine owns the read side, so whatever
// it mirrors into never observes two chunks out of order or interleaved.
package process

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"
	"github.com/google/uuid"

	"github.com/travisbca/lousy-go/vtty"
)

// Config describes how to spawn a child process.
type Config struct {
	Path string
	Args []string
	Env  []string

	// UsePty spawns the child behind a pseudo-terminal (github.com/creack/pty)
	// instead of plain os/exec pipes. Interactive programs that check
	// isatty(stdin) need this; simple line-oriented tools don't.
	UsePty     bool
	Rows, Cols int

	// Mirror receives every chunk of output read from the child, typically
	// a *vtty.Vtty so assertions can be made against what the child would
	// have drawn on a real screen.
	Mirror vtty.ByteSource
}

// Process is a running (or exited) child, and the pipe/pty that connects
// to it.
type Process struct {
	ID  uuid.UUID
	cmd *exec.Cmd

	ptmx   *os.File
	stdin  io.WriteCloser
	stdout io.ReadCloser

	mirror vtty.ByteSource

	mu       sync.Mutex
	buf      []byte
	readDone chan struct{}
	readErr  error
}

// Start spawns the child described by cfg and begins mirroring its
// output immediately.
func Start(cfg Config) (*Process, error) {
	cmd := exec.Command(cfg.Path, cfg.Args...)
	if len(cfg.Env) > 0 {
		cmd.Env = cfg.Env
	}

	p := &Process{ID: uuid.New(), cmd: cmd, mirror: cfg.Mirror, readDone: make(chan struct{})}

	var reader io.Reader
	if cfg.UsePty {
		size := &pty.Winsize{Rows: uint16(cfg.Rows), Cols: uint16(cfg.Cols)}
		ptmx, err := pty.StartWithSize(cmd, size)
		if err != nil {
			return nil, fmt.Errorf("process: start with pty: %w", err)
		}
		p.ptmx = ptmx
		reader = ptmx
	} else {
		stdin, err := cmd.StdinPipe()
		if err != nil {
			return nil, fmt.Errorf("process: stdin pipe: %w", err)
		}
		stdout, err := cmd.StdoutPipe()
		if err != nil {
			return nil, fmt.Errorf("process: stdout pipe: %w", err)
		}
		cmd.Stderr = cmd.Stdout
		if err := cmd.Start(); err != nil {
			return nil, fmt.Errorf("process: start: %w", err)
		}
		p.stdin, p.stdout = stdin, stdout
		reader = stdout
	}

	go p.readLoop(reader)
	return p, nil
}

func (p *Process) readLoop(r io.Reader) {
	defer close(p.readDone)
	chunk := make([]byte, 4096)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			data := make([]byte, n)
			copy(data, chunk[:n])
			if p.mirror != nil {
				p.mirror.Append(data)
			}
			p.mu.Lock()
			p.buf = append(p.buf, data...)
			p.mu.Unlock()
		}
		if err != nil {
			if err != io.EOF {
				p.mu.Lock()
				p.readErr = err
				p.mu.Unlock()
			}
			return
		}
	}
}

// Write sends data to the child's input.
func (p *Process) Write(data []byte) error {
	if p.ptmx != nil {
		_, err := p.ptmx.Write(data)
		return err
	}
	_, err := p.stdin.Write(data)
	return err
}

// Resize changes the pty's window size. It is a no-op (returning nil) when
// the process was not started with a pty.
func (p *Process) Resize(rows, cols int) error {
	if p.ptmx == nil {
		return nil
	}
	return pty.Setsize(p.ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
}

// Terminate kills the child process.
func (p *Process) Terminate() error {
	if p.cmd.Process == nil {
		return nil
	}
	return p.cmd.Process.Kill()
}

// WaitForTermination blocks until the child exits, the context is
// cancelled, or the deadline passes -- whichever comes first. Draining the
// read loop concurrently (it always runs) keeps a child that is still
// producing output from deadlocking on a full pipe buffer while this
// blocks on Wait.
func (p *Process) WaitForTermination(ctx context.Context) error {
	waitDone := make(chan error, 1)
	go func() { waitDone <- p.cmd.Wait() }()

	select {
	case err := <-waitDone:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// FlushOutput discards any output accumulated so far without inspecting
// it, so a subsequent Expect only matches against what comes after.
func (p *Process) FlushOutput() {
	p.mu.Lock()
	p.buf = p.buf[:0]
	p.mu.Unlock()
}

// pollInterval is how often Expect/ExpectPrompt re-check the buffer while
// waiting for more output to arrive.
const pollInterval = 10 * time.Millisecond
