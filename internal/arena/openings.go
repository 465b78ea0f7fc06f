package arena

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	. "github.com/ChizhovVadim/CounterFour/pkg/common"
)

//go:embed openings.txt
var openingsTxt string

func getOpenings() []string {
	var result []string
	var lines = strings.Split(openingsTxt, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !(line == "" || strings.HasPrefix(line, "//")) {
			result = append(result, line)
		}
	}
	return result
}

func checkOpenings(openings []string) error {
	for _, opening := range openings {
		var b, err = ParseBoard(opening)
		if err != nil {
			return fmt.Errorf("opening %q: %w", opening, err)
		}
		if b.Terminal() != ResultNone {
			return fmt.Errorf("opening %q: game already finished", opening)
		}
	}
	return nil
}

// loadOpenings schedules every pair of engines on every opening with both
// colours, once per round.
func loadOpenings(
	ctx context.Context,
	engineCount, rounds int,
	openings []string,
	gameInfos chan<- gameInfo,
) error {
	var gameNumber = 0
	for round := 0; round < rounds; round++ {
		for i := 0; i < engineCount; i++ {
			for j := i + 1; j < engineCount; j++ {
				for _, opening := range openings {
					for _, pair := range [2][2]int{{i, j}, {j, i}} {
						gameNumber++
						select {
						case <-ctx.Done():
							return ctx.Err()
						case gameInfos <- gameInfo{gameNumber: gameNumber, opening: opening, first: pair[0], second: pair[1]}:
						}
					}
				}
			}
		}
	}
	return nil
}
