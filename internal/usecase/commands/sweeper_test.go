//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"workspace-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCommands struct {
	commands.ReservationCommands
	calls atomic.Int32
	err   error
}

func (c *countingCommands) ExpireUnpaid(context.Context) (*commands.ExpireResult, error) {
	c.calls.Add(1)
	if c.err != nil {
		return nil, c.err
	}
	return &commands.ExpireResult{Scanned: 1, Released: 1}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExpirySweeper_RunsUntilStopped(t *testing.T) {
	for _, failing := range []bool{false, true} {
		cmds := &countingCommands{}
		if failing {
			cmds.err = errors.New("db down")
		}
		s := commands.NewExpirySweeper(cmds, 5*time.Millisecond, discardLogger())
		s.Start()

		require.Eventually(t, func() bool { return cmds.calls.Load() >= 2 }, time.Second, time.Millisecond,
			"sweeps keep running after failures=%v", failing)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		require.NoError(t, s.Stop(ctx))
		cancel()

		after := cmds.calls.Load()
		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, after, cmds.calls.Load(), "no sweeps after Stop")
	}
}

func TestExpirySweeper_DisabledInterval(t *testing.T) {
	cmds := &countingCommands{}
	s := commands.NewExpirySweeper(cmds, 0, discardLogger())
	s.Start()
	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, s.Stop(context.Background()))
	assert.Zero(t, cmds.calls.Load())
}
