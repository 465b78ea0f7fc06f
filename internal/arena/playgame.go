package arena

import (
	"context"
	"fmt"

	. "github.com/ChizhovVadim/CounterFour/pkg/common"
	"github.com/ChizhovVadim/CounterFour/pkg/engine"
	"github.com/samber/lo"
)

func playGame(
	ctx context.Context,
	engines []Engine,
	limits engine.Limits,
	info gameInfo,
) (gameResult, error) {

	var first, second = engines[info.first], engines[info.second]
	for _, eng := range []Engine{first, second} {
		if c, ok := eng.(clearer); ok {
			c.Clear()
		}
	}

	var rules = engine.NewConnect4()
	var b, err = ParseBoard(info.opening)
	if err != nil {
		return gameResult{}, err
	}

	var moves []Move
	for {
		if result := rules.Terminal(b); result != ResultNone {
			var comment = "connect four"
			if result == ResultDraw {
				comment = "board full"
			}
			return gameResult{gameInfo: info, moves: moves, result: result, comment: comment}, nil
		}
		if err := ctx.Err(); err != nil {
			return gameResult{}, err
		}
		var side = rules.ToMove(b)
		var eng = first
		if side == Player2 {
			eng = second
		}
		var searchResult = eng.Search(ctx, engine.SearchParams{
			Rules:  rules,
			Board:  b,
			Limits: limits,
		})
		if len(searchResult.MainLine) == 0 {
			return gameResult{}, fmt.Errorf("game %v: %v returned no move", info.gameNumber, eng)
		}
		var bestMove = searchResult.MainLine[0]
		if !lo.Contains(rules.Actions(b), bestMove) {
			return gameResult{}, fmt.Errorf("game %v: %v played illegal move %v", info.gameNumber, eng, bestMove)
		}
		b, err = rules.Apply(side, bestMove, b)
		if err != nil {
			return gameResult{}, err
		}
		moves = append(moves, bestMove)
	}
}
