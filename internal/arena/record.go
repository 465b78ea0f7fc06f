package arena

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	. "github.com/ChizhovVadim/CounterFour/pkg/common"
	"github.com/klauspost/compress/zstd"
	"github.com/samber/lo"
)

// Record is one finished game. Moves follow the opening.
type Record struct {
	Game    int
	First   string
	Second  string
	Opening string
	Moves   []Move
	Result  Result
}

func newRecord(names []string, res gameResult) Record {
	return Record{
		Game:    res.gameInfo.gameNumber,
		First:   names[res.gameInfo.first],
		Second:  names[res.gameInfo.second],
		Opening: res.gameInfo.opening,
		Moves:   res.moves,
		Result:  res.result,
	}
}

// Board replays the record.
func (r *Record) Board() (Board, error) {
	return ParseBoard(r.Opening + formatMoves(r.Moves))
}

func formatMoves(ml []Move) string {
	return strings.Join(lo.Map(ml, func(m Move, _ int) string {
		return m.String()
	}), "")
}

// recordWriter writes tab separated lines through a zstd stream.
type recordWriter struct {
	encoder *zstd.Encoder
}

func newRecordWriter(w io.Writer) (*recordWriter, error) {
	var encoder, err = zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}
	return &recordWriter{encoder: encoder}, nil
}

func (rw *recordWriter) Write(r Record) error {
	_, err := fmt.Fprintf(rw.encoder, "%d\t%s\t%s\t%s\t%s\t%s\n",
		r.Game, r.First, r.Second, r.Opening, formatMoves(r.Moves), r.Result)
	return err
}

func (rw *recordWriter) Close() error {
	return rw.encoder.Close()
}

func ReadRecords(r io.Reader) ([]Record, error) {
	var decoder, err = zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer decoder.Close()

	var result []Record
	var scanner = bufio.NewScanner(decoder)
	for scanner.Scan() {
		var record, err = parseRecord(scanner.Text())
		if err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func parseRecord(line string) (Record, error) {
	var fields = strings.Split(line, "\t")
	if len(fields) != 6 {
		return Record{}, fmt.Errorf("bad record %q", line)
	}
	var game, err = strconv.Atoi(fields[0])
	if err != nil {
		return Record{}, fmt.Errorf("bad record %q: %w", line, err)
	}
	var moves []Move
	for _, c := range fields[4] {
		var m, err = ParseMove(string(c))
		if err != nil {
			return Record{}, fmt.Errorf("bad record %q: %w", line, err)
		}
		moves = append(moves, m)
	}
	var result Result
	switch fields[5] {
	case ResultDraw.String():
		result = ResultDraw
	case ResultPlayer1Won.String():
		result = ResultPlayer1Won
	case ResultPlayer2Won.String():
		result = ResultPlayer2Won
	default:
		return Record{}, fmt.Errorf("bad record %q: unknown result", line)
	}
	return Record{
		Game:    game,
		First:   fields[1],
		Second:  fields[2],
		Opening: fields[3],
		Moves:   moves,
		Result:  result,
	}, nil
}
