package gridio

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/wordgrid/board"
	"github.com/domino14/wordgrid/testhelpers"
)

func TestReadWords(t *testing.T) {
	words, err := ReadWords(strings.NewReader("ANT\nBOX\nSOB\nTO\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ANT", "BOX", "SOB", "TO"}, words)

	// no trailing newline, windows line endings, blank lines
	words, err = ReadWords(strings.NewReader("ANT\r\nBOX\r\n\r\nSOB"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ANT", "BOX", "SOB"}, words)
}

func TestReadBoard(t *testing.T) {
	b, err := ReadBoard(strings.NewReader("ANTT\nXSOB\n"))
	require.NoError(t, err)
	assert.Equal(t, board.MakeBoard(board.AnttBoard), b)
	assert.Equal(t, [][]rune{{'A', 'N', 'T', 'T'}, {'X', 'S', 'O', 'B'}}, [][]rune(b))

	// a blank line between rows is dropped, not read as an empty row
	b, err = ReadBoard(strings.NewReader("ANTT\n\nXSOB\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, b.NumRows())
	assert.Equal(t, "ANTT\nXSOB", b.String())

	b, err = ReadBoard(strings.NewReader("BCGT\nABC\n"))
	require.NoError(t, err)
	assert.True(t, b.IsRagged())
	row, err := b.RowString(1)
	require.NoError(t, err)
	assert.Equal(t, "ABC", row)
	_, err = b.ColumnString(3)
	assert.True(t, errors.Is(err, board.ErrRaggedBoard))

	_, err = ReadBoard(strings.NewReader("\n\n"))
	assert.True(t, errors.Is(err, board.ErrEmptyBoard))
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	bf := testhelpers.WriteFile(t, dir, "board.txt", "ATNT\nXSOB\n")
	// "CAFÉ" in ISO 8859-1
	wf := testhelpers.WriteFile(t, dir, "words.txt", "NO\nCAF\xc9\n")

	b, err := ReadBoardFile(bf, UTF8)
	require.NoError(t, err)
	found, err := b.ContainsWordInColumn("NO")
	require.NoError(t, err)
	assert.True(t, found)

	words, err := ReadWordsFile(wf, Latin1)
	require.NoError(t, err)
	assert.Equal(t, []string{"NO", "CAFÉ"}, words)

	_, err = ReadBoardFile(filepath.Join(dir, "missing.txt"), UTF8)
	assert.Error(t, err)
}

func TestParseEncoding(t *testing.T) {
	for in, exp := range map[string]Encoding{
		"":           UTF8,
		"UTF-8":      UTF8,
		"latin1":     Latin1,
		"ISO-8859-1": Latin1,
	} {
		enc, err := ParseEncoding(in)
		require.NoError(t, err)
		assert.Equal(t, exp, enc)
	}
	_, err := ParseEncoding("ebcdic")
	assert.Error(t, err)
}

func TestReadPuzzle(t *testing.T) {
	doc := `
name: tiny
board:
  - ANTT
  - XSOB
words: [ANT, BOX, SOB, TO]
`
	p, err := ReadPuzzle(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "tiny", p.Name)
	assert.Equal(t, []string{"ANT", "BOX", "SOB", "TO"}, p.Words)
	b, err := p.Board()
	require.NoError(t, err)
	assert.Equal(t, "ANTT\nXSOB", b.String())

	_, err = ReadPuzzle(strings.NewReader("board: [ANTT]\n"))
	assert.Equal(t, errNoWords, err)

	_, err = ReadPuzzle(strings.NewReader("words: [ANT]\n"))
	assert.True(t, errors.Is(err, board.ErrEmptyBoard))
}

func TestReadPuzzleFileName(t *testing.T) {
	dir := t.TempDir()
	fn := testhelpers.WriteFile(t, dir, "school.yaml", "board: [ANTT, XSOB]\nwords: [SOB]\n")
	p, err := ReadPuzzleFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "school", p.Name)

	fn = testhelpers.WriteFile(t, dir, "other.yaml", testhelpers.TinyPuzzle)
	p, err = ReadPuzzleFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "tiny", p.Name)
}
