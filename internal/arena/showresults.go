package arena

import (
	"context"
	"math"
	"sort"

	. "github.com/ChizhovVadim/CounterFour/pkg/common"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

type Standing struct {
	Name   string
	Games  int
	Wins   int
	Losses int
	Draws  int
}

func (s *Standing) Points() float64 {
	return float64(s.Wins) + 0.5*float64(s.Draws)
}

// PairResult counts games from the point of view of engine A.
type PairResult struct {
	A, B   string
	Wins   int
	Losses int
	Draws  int
}

func (p *PairResult) Stat() GameStatistics {
	return computeStat(p.Wins, p.Losses, p.Draws)
}

type Summary struct {
	Games     int
	Standings []Standing
	Pairs     []PairResult
}

func showResults(
	ctx context.Context,
	logger zerolog.Logger,
	names []string,
	gameResults <-chan gameResult,
	records *recordWriter,
) (Summary, error) {
	var standings = lo.Map(names, func(name string, _ int) Standing {
		return Standing{Name: name}
	})
	var pairs = make(map[[2]int]*PairResult)
	var pairOrder [][2]int
	var games = 0

	for gameResult := range gameResults {
		games++
		var info = gameResult.gameInfo
		logger.Info().
			Int("game", info.gameNumber).
			Str("first", names[info.first]).
			Str("second", names[info.second]).
			Str("opening", info.opening).
			Str("result", gameResult.result.String()).
			Str("comment", gameResult.comment).
			Int("moves", len(gameResult.moves)).
			Msg("game finished")

		if records != nil {
			if err := records.Write(newRecord(names, gameResult)); err != nil {
				return Summary{}, err
			}
		}

		var a, b = info.first, info.second
		if a > b {
			a, b = b, a
		}
		var key = [2]int{a, b}
		var pair, found = pairs[key]
		if !found {
			pair = &PairResult{A: names[a], B: names[b]}
			pairs[key] = pair
			pairOrder = append(pairOrder, key)
		}

		standings[info.first].Games++
		standings[info.second].Games++
		switch gameResult.result.Winner() {
		case Empty:
			standings[info.first].Draws++
			standings[info.second].Draws++
			pair.Draws++
		default:
			var winner, loser = info.first, info.second
			if gameResult.result.Winner() == Player2 {
				winner, loser = loser, winner
			}
			standings[winner].Wins++
			standings[loser].Losses++
			if winner == a {
				pair.Wins++
			} else {
				pair.Losses++
			}
		}

		var stat = pair.Stat()
		logger.Info().
			Str("pair", pair.A+" vs "+pair.B).
			Int("wins", pair.Wins).
			Int("losses", pair.Losses).
			Int("draws", pair.Draws).
			Float64("fraction", stat.winningFraction).
			Float64("elo", stat.eloDifference).
			Float64("los", stat.los*100).
			Msg("score")
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Points() > standings[j].Points()
	})
	return Summary{
		Games:     games,
		Standings: standings,
		Pairs: lo.Map(pairOrder, func(key [2]int, _ int) PairResult {
			return *pairs[key]
		}),
	}, nil
}

type GameStatistics struct {
	winningFraction float64
	eloDifference   float64
	los             float64
}

//https://chessprogramming.wikispaces.com/Match%20Statistics
func computeStat(wins, losses, draws int) GameStatistics {
	var games = wins + losses + draws
	if games == 0 {
		return GameStatistics{winningFraction: 0.5, los: 0.5}
	}
	var winningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	var eloDifference = -math.Log(1/winningFraction-1) * 400 / math.Ln10
	var los = 0.5
	if wins+losses != 0 {
		los = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	}
	return GameStatistics{
		winningFraction: winningFraction,
		eloDifference:   eloDifference,
		los:             los,
	}
}
