package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/stepline/pkg/registry"
)

// DefaultEffects returns the effects scenes can name with `effect:`.
//
//   - bell: rings the terminal bell on out.
//   - log: logs the unit id at info level.
func DefaultEffects(out io.Writer, logger *slog.Logger) *registry.Registry {
	r := registry.NewRegistry()
	r.Register("bell", func(string) {
		fmt.Fprint(out, "\a")
	})
	r.Register("log", func(unitID string) {
		logger.Info("unit committed", "unit", unitID)
	})
	return r
}
