package process

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"time"
)

// ErrTimeout is returned by the blocking read helpers when ctx is done
// before the requested data arrived, joined with ctx.Err() so callers can
// also test for context.DeadlineExceeded or context.Canceled.
var ErrTimeout = errors.New("process: timed out waiting for output")

// ReadLine blocks until a complete newline-terminated line is available
// and returns it without the trailing newline, consuming it from the
// buffer. Unlike ExpectPrompt, a line with no trailing "\n" yet never
// matches -- this is for line-oriented protocols, not interactive prompts.
func (p *Process) ReadLine(ctx context.Context) (string, error) {
	for {
		p.mu.Lock()
		idx := bytes.IndexByte(p.buf, '\n')
		if idx >= 0 {
			line := string(bytes.TrimRight(p.buf[:idx], "\r"))
			p.buf = p.buf[idx+1:]
			p.mu.Unlock()
			return line, nil
		}
		readErr := p.readErr
		p.mu.Unlock()
		if readErr != nil {
			return "", readErr
		}
		if err := p.sleep(ctx); err != nil {
			return "", err
		}
	}
}

// ReadSimple blocks until at least n bytes have been read and returns
// exactly n of them, consuming them from the buffer.
func (p *Process) ReadSimple(ctx context.Context, n int) ([]byte, error) {
	for {
		p.mu.Lock()
		if len(p.buf) >= n {
			out := make([]byte, n)
			copy(out, p.buf[:n])
			p.buf = p.buf[n:]
			p.mu.Unlock()
			return out, nil
		}
		readErr := p.readErr
		p.mu.Unlock()
		if readErr != nil {
			return nil, readErr
		}
		if err := p.sleep(ctx); err != nil {
			return nil, err
		}
	}
}

// Expect blocks until re matches somewhere in the accumulated output,
// returning the matched text and consuming the buffer up through the end
// of the match.
func (p *Process) Expect(ctx context.Context, re *regexp.Regexp) (string, error) {
	for {
		p.mu.Lock()
		loc := re.FindIndex(p.buf)
		if loc != nil {
			match := string(p.buf[loc[0]:loc[1]])
			p.buf = p.buf[loc[1]:]
			p.mu.Unlock()
			return match, nil
		}
		readErr := p.readErr
		p.mu.Unlock()
		if readErr != nil {
			return "", readErr
		}
		if err := p.sleep(ctx); err != nil {
			return "", err
		}
	}
}

// ExpectPrompt blocks until re matches the trailing partial line -- the
// text after the last newline seen so far, which may never get a newline
// of its own (a shell prompt like "$ " is the canonical case). Unlike
// Expect, it only ever looks at that trailing segment, not the whole
// buffer, so an earlier line that happened to match re is ignored.
func (p *Process) ExpectPrompt(ctx context.Context, re *regexp.Regexp) (string, error) {
	for {
		p.mu.Lock()
		tail := p.buf
		if idx := bytes.LastIndexByte(p.buf, '\n'); idx >= 0 {
			tail = p.buf[idx+1:]
		}
		loc := re.FindIndex(tail)
		if loc != nil {
			match := string(tail[loc[0]:loc[1]])
			consumed := len(p.buf) - len(tail) + loc[1]
			p.buf = p.buf[consumed:]
			p.mu.Unlock()
			return match, nil
		}
		readErr := p.readErr
		p.mu.Unlock()
		if readErr != nil {
			return "", readErr
		}
		if err := p.sleep(ctx); err != nil {
			return "", err
		}
	}
}

func (p *Process) sleep(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return errors.Join(ErrTimeout, ctx.Err())
	case <-time.After(pollInterval):
		return nil
	}
}
