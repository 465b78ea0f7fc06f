package enginebuilder

import (
	"context"
	"fmt"

	"github.com/ChizhovVadim/CounterFour/pkg/engine"
	"github.com/rs/zerolog"
)

// Configurable rebuilds its engine on Prepare when the spec or options
// changed since the last build.
type Configurable struct {
	Spec    string
	Options engine.Options
	Logger  zerolog.Logger

	engine    Engine
	builtSpec string
	builtOpts engine.Options
}

func NewConfigurable(spec string, logger zerolog.Logger) *Configurable {
	return &Configurable{
		Spec:    spec,
		Options: engine.NewOptions(),
		Logger:  logger,
	}
}

func (c *Configurable) Prepare() error {
	if c.engine != nil && c.builtSpec == c.Spec && c.builtOpts == c.Options {
		return nil
	}
	var eng, err = Build(c.Spec, c.Options, c.Logger)
	if err != nil {
		return fmt.Errorf("build %v: %w", c.Spec, err)
	}
	c.engine = eng
	c.builtSpec = c.Spec
	c.builtOpts = c.Options
	c.Logger.Info().Str("engine", eng.String()).Msg("engine ready")
	return nil
}

func (c *Configurable) Clear() {
	if cl, ok := c.engine.(interface{ Clear() }); ok {
		cl.Clear()
	}
}

func (c *Configurable) Search(ctx context.Context, params engine.SearchParams) engine.SearchInfo {
	return c.engine.Search(ctx, params)
}
