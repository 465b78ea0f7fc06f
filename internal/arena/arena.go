package arena

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Run plays a round robin between the configured engines. Engine specs are
// also the names in the results, so they must be unique.
func Run(
	ctx context.Context,
	config Config,
	build BuildFunc,
	logger zerolog.Logger,
) (Summary, error) {
	if len(config.Engines) < 2 {
		return Summary{}, fmt.Errorf("arena needs at least two engines, got %v", len(config.Engines))
	}
	if dups := lo.FindDuplicates(config.Engines); len(dups) != 0 {
		return Summary{}, fmt.Errorf("engine names collide: %v", dups)
	}
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	if config.Rounds <= 0 {
		config.Rounds = 1
	}
	var openings = config.Openings
	if len(openings) == 0 {
		openings = getOpenings()
	}
	if err := checkOpenings(openings); err != nil {
		return Summary{}, err
	}
	// fail fast on bad specs before any goroutine starts
	if _, err := buildEngines(config.Engines, build); err != nil {
		return Summary{}, err
	}

	var records *recordWriter
	if config.Records != nil {
		var err error
		records, err = newRecordWriter(config.Records)
		if err != nil {
			return Summary{}, err
		}
	}

	logger.Info().
		Strs("engines", config.Engines).
		Int("openings", len(openings)).
		Int("rounds", config.Rounds).
		Int("NumCPU", runtime.NumCPU()).
		Int("gameConcurrency", config.Concurrency).
		Msg("arena started")

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)

	g.Go(func() error {
		defer close(gameInfos)
		return loadOpenings(ctx, len(config.Engines), config.Rounds, openings, gameInfos)
	})

	var summary Summary
	g.Go(func() error {
		var err error
		summary, err = showResults(ctx, logger, config.Engines, gameResults, records)
		return err
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < config.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, config, build, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	var err = g.Wait()
	if records != nil {
		if closeErr := records.Close(); err == nil {
			err = closeErr
		}
	}
	if err != nil {
		return Summary{}, err
	}
	logger.Info().Int("games", summary.Games).Msg("arena finished")
	return summary, nil
}

func buildEngines(specs []string, build BuildFunc) ([]Engine, error) {
	var result = make([]Engine, len(specs))
	for i, spec := range specs {
		var eng, err = build(spec)
		if err != nil {
			return nil, fmt.Errorf("engine %v: %w", spec, err)
		}
		result[i] = eng
	}
	return result, nil
}

func playGames(
	ctx context.Context,
	config Config,
	build BuildFunc,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	var engines, err = buildEngines(config.Engines, build)
	if err != nil {
		return err
	}
	for gameInfo := range gameInfos {
		var res, err = playGame(ctx, engines, config.Limits, gameInfo)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
