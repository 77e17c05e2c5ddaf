package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/wordgrid/board"
	"github.com/domino14/wordgrid/cache"
	"github.com/domino14/wordgrid/config"
	"github.com/domino14/wordgrid/game"
	"github.com/domino14/wordgrid/gridio"
	"github.com/domino14/wordgrid/lexicon"
	"github.com/domino14/wordgrid/scoring"
)

func (sc *ShellController) encoding() (gridio.Encoding, error) {
	return gridio.ParseEncoding(sc.config.GetString(config.ConfigEncoding))
}

// fileKey is the cache key for a text file read with a given encoding.
func fileKey(kind string, enc gridio.Encoding, filename string) string {
	return kind + ":" + string(enc) + ":" + filename
}

func (sc *ShellController) loadBoard(filename string, reload bool) (board.Board, error) {
	enc, err := sc.encoding()
	if err != nil {
		return nil, err
	}
	key := fileKey("board", enc, filename)
	if reload {
		cache.Evict(key)
	}
	obj, err := cache.Load(key, func(string) (interface{}, error) {
		return gridio.ReadBoardFile(filename, enc)
	})
	if err != nil {
		return nil, err
	}
	return obj.(board.Board), nil
}

func (sc *ShellController) loadWords(filename string, reload bool) ([]string, error) {
	enc, err := sc.encoding()
	if err != nil {
		return nil, err
	}
	key := fileKey("words", enc, filename)
	if reload {
		cache.Evict(key)
	}
	obj, err := cache.Load(key, func(string) (interface{}, error) {
		return gridio.ReadWordsFile(filename, enc)
	})
	if err != nil {
		return nil, err
	}
	return obj.([]string), nil
}

func (sc *ShellController) loadPuzzle(filename string, reload bool) (*gridio.Puzzle, error) {
	key := "puzzle:" + filename
	if reload {
		cache.Evict(key)
	}
	obj, err := cache.Load(key, func(string) (interface{}, error) {
		return gridio.ReadPuzzleFile(filename)
	})
	if err != nil {
		return nil, err
	}
	return obj.(*gridio.Puzzle), nil
}

// LoadFromConfig loads whatever puzzle or board/word files were named in
// the config. It does nothing if none were.
func (sc *ShellController) LoadFromConfig() error {
	opts := map[string]string{}
	if p := sc.config.GetString(config.ConfigPuzzleFile); p != "" {
		opts["puzzle"] = p
	}
	if b := sc.config.GetString(config.ConfigBoardFile); b != "" {
		opts["board"] = b
	}
	if w := sc.config.GetString(config.ConfigWordsFile); w != "" {
		opts["words"] = w
	}
	if len(opts) == 0 {
		return nil
	}
	resp, err := sc.load(&shellcmd{cmd: "load", options: opts})
	if err != nil {
		return err
	}
	sc.showMessage(resp.message)
	return nil
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	puzzleFile := cmd.options["puzzle"]
	if puzzleFile == "" && len(cmd.args) == 1 {
		puzzleFile = cmd.args[0]
	}
	reload := cmd.options["reload"] == "true"
	var b board.Board
	var words []string
	var name string

	if puzzleFile != "" {
		p, err := sc.loadPuzzle(sc.config.DataFile(puzzleFile), reload)
		if err != nil {
			return nil, err
		}
		b, err = p.Board()
		if err != nil {
			return nil, err
		}
		words, name = p.Words, p.Name
	} else {
		boardFile, wordsFile := cmd.options["board"], cmd.options["words"]
		if boardFile == "" || wordsFile == "" {
			return nil, errors.New("usage: load <puzzle> | load -puzzle <puzzle> | load -board <file> -words <file> [-reload true]")
		}
		boardFile, wordsFile = sc.config.DataFile(boardFile), sc.config.DataFile(wordsFile)
		g := errgroup.Group{}
		g.Go(func() error {
			var err error
			b, err = sc.loadBoard(boardFile, reload)
			return err
		})
		g.Go(func() error {
			var err error
			words, err = sc.loadWords(wordsFile, reload)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		name = strings.TrimSuffix(filepath.Base(wordsFile), filepath.Ext(wordsFile))
	}

	sc.board = b
	sc.words = lexicon.NewWordList(name, words)
	sc.game = game.NewGame(sc.board, sc.words, game.NewPlayer(sc.nickname))
	log.Debug().Str("list", name).Int("words", len(words)).Int("rows", b.NumRows()).Msg("loaded game")
	if b.IsRagged() {
		log.Warn().Str("list", name).Msg("board rows have unequal lengths; only rows will be searched")
	}
	return sc.show(cmd)
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	txt, err := sc.game.ToDisplayText()
	if err != nil {
		return nil, err
	}
	return msg(txt), nil
}

func oneWord(cmd *shellcmd) (string, error) {
	if len(cmd.args) != 1 {
		return "", fmt.Errorf("usage: %s <word>", cmd.cmd)
	}
	return strings.ToUpper(cmd.args[0]), nil
}

func (sc *ShellController) check(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	word, err := oneWord(cmd)
	if err != nil {
		return nil, err
	}
	loc, onBoard, err := sc.game.FindWord(word)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	sb.WriteString(word)
	if sc.words.HasWord(word) {
		sb.WriteString(" is on the word list")
	} else {
		sb.WriteString(" is not on the word list")
	}
	if onBoard {
		sb.WriteString(fmt.Sprintf(" and on the board at %v", loc))
	} else {
		sb.WriteString(" and not on the board")
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) score(cmd *shellcmd) (*Response, error) {
	word, err := oneWord(cmd)
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("%s is worth %d", word, scoring.WordScore(word))), nil
}

func (sc *ShellController) count(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	n, err := sc.game.Count()
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("%d of %d listed words are on the board", n, sc.words.Len())), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	word, err := oneWord(cmd)
	if err != nil {
		return nil, err
	}
	pts, err := sc.game.Play(word)
	if err != nil {
		return nil, err
	}
	out := fmt.Sprintf("%s for %d. %v", word, pts, sc.game.Player())
	// The word has already scored by now.
	over, err := sc.game.IsOver()
	if err != nil {
		log.Err(err).Str("word", word).Msg("could not check for game end")
	} else if over {
		out += "\nAll words found!"
	}
	return msg(out), nil
}

func (sc *ShellController) found(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	found := sc.game.Found()
	if len(found) == 0 {
		return msg("no words found yet"), nil
	}
	lines := lo.Map(found, func(w string, idx int) string {
		return fmt.Sprintf("%3d: %-15s%d", idx+1, w, scoring.WordScore(w))
	})
	return msg(strings.Join(lines, "\n")), nil
}

func (sc *ShellController) remaining(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	rem, err := sc.game.Remaining()
	if err != nil {
		return nil, err
	}
	out := fmt.Sprintf("%d words left to find", len(rem))
	if cmd.options["show"] == "true" && len(rem) > 0 {
		out += ": " + strings.Join(rem, " ")
	}
	return msg(out), nil
}

func (sc *ShellController) player(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		if sc.game != nil {
			return msg(sc.game.Player().String()), nil
		}
		return msg(sc.nickname), nil
	}
	sc.nickname = strings.Join(cmd.args, " ")
	if sc.game != nil {
		sc.game.Player().Nickname = sc.nickname
	}
	return msg("player is now " + sc.nickname), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	topic := "usage"
	if len(cmd.args) > 0 {
		topic = cmd.args[0]
	}
	dat, err := helpText.ReadFile("helptext/" + topic + ".txt")
	if errors.Is(err, fs.ErrNotExist) {
		return msg("There is no help text for the topic " + topic), nil
	} else if err != nil {
		return nil, err
	}
	return msg(strings.TrimRight(string(dat), "\n")), nil
}
