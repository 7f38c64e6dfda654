package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/aretw0/stepline/pkg/ports"
)

// errQuit is returned by routeKey for the quit keys.
var errQuit = errors.New("quit")

// KeyHelp lists the playback keys, shown under the banner.
const KeyHelp = "space pause · n/b step · ]/[ checkpoint · h helper · r reset · +/- speed · q quit"

// routeKey maps a single key press onto the controller.
// Unknown keys are ignored.
func routeKey(ctx context.Context, c ports.Controller, key byte) error {
	switch key {
	case ' ', 'p':
		_, err := c.TogglePause(ctx)
		return err
	case 'n', 'l':
		return c.StepNext(ctx)
	case 'b', 'j':
		return c.StepBack(ctx)
	case ']':
		_, _, err := c.LoadNextCheckpoint(ctx)
		return err
	case '[':
		_, _, err := c.LoadPreviousCheckpoint(ctx)
		return err
	case 'h':
		in, err := c.Inspect(ctx)
		if err != nil {
			return err
		}
		return c.SetUsingHelperQueue(ctx, !in.UsingHelper)
	case 'r':
		return c.Reset(ctx)
	case '.':
		return c.ReDrawAll(ctx)
	case '+', '=':
		return scaleSpeed(ctx, c, 2)
	case '-', '_':
		return scaleSpeed(ctx, c, 0.5)
	case 'q', 3: // 3 is Ctrl+C in raw mode
		return errQuit
	}
	return nil
}

func scaleSpeed(ctx context.Context, c ports.Controller, factor float64) error {
	in, err := c.Inspect(ctx)
	if err != nil {
		return err
	}
	return c.UpdateSpeed(ctx, in.Speed*factor)
}

// readKeys routes every byte read from r until a quit key or EOF, then calls stop.
func readKeys(ctx context.Context, r io.Reader, c ports.Controller, stop func(), logger *slog.Logger) {
	defer stop()
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Warn("key input failed", "error", err)
			}
			return
		}
		if n == 0 {
			continue
		}
		if err := routeKey(ctx, c, buf[0]); err != nil {
			if errors.Is(err, errQuit) {
				return
			}
			logger.Debug("key command failed", "key", string(buf[0]), "error", err)
		}
	}
}
