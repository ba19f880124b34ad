package process

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	chunks [][]byte
}

func (r *recorder) Append(p []byte) {
	cp := make([]byte, len(p))
	copy(cp, p)
	r.chunks = append(r.chunks, cp)
}

func TestStartAndReadLine(t *testing.T) {
	rec := &recorder{}
	p, err := Start(Config{
		Path:   "/bin/sh",
		Args:   []string{"-c", "echo hello; echo world"},
		Mirror: rec,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	line, err := p.ReadLine(ctx)
	require.NoError(t, err)
	require.Equal(t, "hello", line)

	line, err = p.ReadLine(ctx)
	require.NoError(t, err)
	require.Equal(t, "world", line)

	require.NoError(t, p.WaitForTermination(ctx))
}

func TestExpectMatchesAnywhereInBuffer(t *testing.T) {
	p, err := Start(Config{Path: "/bin/sh", Args: []string{"-c", "echo START; echo DONE-123"}})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	match, err := p.Expect(ctx, regexp.MustCompile(`DONE-\d+`))
	require.NoError(t, err)
	require.Equal(t, "DONE-123", match)
}

func TestWriteRoundTrip(t *testing.T) {
	p, err := Start(Config{Path: "/bin/sh", Args: []string{"-c", "read line; echo got:$line"}})
	require.NoError(t, err)

	require.NoError(t, p.Write([]byte("ping\n")))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	line, err := p.ReadLine(ctx)
	require.NoError(t, err)
	require.Equal(t, "got:ping", line)
}

func TestExpectTimesOutWithoutAMatch(t *testing.T) {
	p, err := Start(Config{Path: "/bin/sh", Args: []string{"-c", "sleep 5"}})
	require.NoError(t, err)
	defer p.Terminate()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err = p.Expect(ctx, regexp.MustCompile(`never`))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFlushOutputDiscardsBuffer(t *testing.T) {
	p, err := Start(Config{Path: "/bin/sh", Args: []string{"-c", "echo before; sleep 0.2; echo after"}})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err = p.Expect(ctx, regexp.MustCompile("before"))
	require.NoError(t, err)

	p.FlushOutput()

	line, err := p.ReadLine(ctx)
	require.NoError(t, err)
	require.Equal(t, "after", line)
}
