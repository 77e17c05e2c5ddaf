// Package gridio reads boards and word lists from line-based text files,
// and puzzle files that bundle both.
package gridio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/domino14/wordgrid/board"
)

type Encoding string

const (
	UTF8   Encoding = "utf8"
	Latin1 Encoding = "latin1"
)

// ParseEncoding accepts the usual spellings of the supported encodings.
// An empty string means UTF-8.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf8", "utf-8":
		return UTF8, nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return Latin1, nil
	}
	return "", fmt.Errorf("unhandled character encoding %v", s)
}

func decodingReader(r io.Reader, enc Encoding) io.Reader {
	if enc == Latin1 {
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	return r
}

// readLines returns every non-blank line of r with its line terminator
// removed. A trailing \r is removed too.
func readLines(r io.Reader) ([]string, error) {
	lines := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ReadWords returns all the words from r, one per line.
func ReadWords(r io.Reader) ([]string, error) {
	return readLines(r)
}

// ReadBoard returns a board read from r. There is one row of the board
// per line, and every character of a line is one cell.
func ReadBoard(r io.Reader) (board.Board, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	b := board.MakeBoard(lines)
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadWordsFile reads a word list file in the given encoding.
func ReadWordsFile(filename string, enc Encoding) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	words, err := ReadWords(decodingReader(f, enc))
	if err != nil {
		return nil, fmt.Errorf("reading words from %v: %w", filename, err)
	}
	log.Debug().Str("file", filename).Int("words", len(words)).Msg("read word list")
	return words, nil
}

// ReadBoardFile reads a board file in the given encoding.
func ReadBoardFile(filename string, enc Encoding) (board.Board, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := ReadBoard(decodingReader(f, enc))
	if err != nil {
		return nil, fmt.Errorf("reading board from %v: %w", filename, err)
	}
	log.Debug().Str("file", filename).Int("rows", b.NumRows()).Int("cols", b.Width()).
		Bool("ragged", b.IsRagged()).Msg("read board")
	return b, nil
}
