package solve

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

var puzzleLine = regexp.MustCompile(`^[1-9.]{81}$`)

// ReadPuzzles collects puzzle strings from r, one per line. Blank
// lines and lines starting with '#' are skipped; anything else must
// be exactly 81 characters of digits and dots.
func ReadPuzzles(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)
	var puzzles []string
	lineNo := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("error reading puzzle data: %w", err)
		}
		done := errors.Is(err, io.EOF)
		lineNo++

		line = strings.TrimSpace(line)
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
		case puzzleLine.MatchString(line):
			puzzles = append(puzzles, line)
		default:
			return nil, fmt.Errorf("line %d: not a valid puzzle (expected 81 characters from '.' and '1'-'9')", lineNo)
		}

		if done {
			break
		}
	}
	if len(puzzles) == 0 {
		return nil, errors.New("no puzzles found")
	}
	return puzzles, nil
}

func readPuzzleFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening puzzle file (%s): %w", path, err)
	}
	defer f.Close()
	return ReadPuzzles(f)
}
