package shell

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordgrid/board"
	"github.com/domino14/wordgrid/config"
	"github.com/domino14/wordgrid/game"
	"github.com/domino14/wordgrid/lexicon"
)

//go:embed helptext
var helpText embed.FS

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoGame            = errors.New("please load a board and word list first with the `load` command")
	errQuit              = errors.New("sending quit signal")
)

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

type ShellController struct {
	l      *readline.Instance
	config *config.Config
	out    io.Writer

	nickname string
	board    board.Board
	words    *lexicon.WordList
	game     *game.Game
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func newShellController(cfg *config.Config, out io.Writer) *ShellController {
	return &ShellController{
		config:   cfg,
		out:      out,
		nickname: cfg.GetString(config.ConfigNickname),
	}
}

func NewShellController(cfg *config.Config) *ShellController {
	sc := newShellController(cfg, nil)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mwordgrid>\033[0m ",
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})

	if err != nil {
		panic(err)
	}
	sc.l = l
	sc.out = l.Stderr()
	return sc
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}
	for i := 1; i < len(fields); i++ {
		if strings.HasPrefix(fields[i], "-") {
			if i == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[strings.TrimPrefix(fields[i], "-")] = fields[i+1]
			i++
			continue
		}
		args = append(args, fields[i])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (sc *ShellController) handle(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "bye":
		return nil, errQuit
	case "help":
		return sc.help(cmd)
	case "load":
		return sc.load(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "check", "c":
		return sc.check(cmd)
	case "score":
		return sc.score(cmd)
	case "count":
		return sc.count(cmd)
	case "play", "p":
		return sc.play(cmd)
	case "found", "f":
		return sc.found(cmd)
	case "remaining", "r":
		return sc.remaining(cmd)
	case "player":
		return sc.player(cmd)
	default:
		msg := fmt.Sprintf("command %v not found", strconv.Quote(cmd.cmd))
		log.Info().Msg(msg)
		return nil, errors.New(msg)
	}
}

// dispatch runs one line and prints its result. It returns false once the
// shell should stop.
func (sc *ShellController) dispatch(line string, sig chan os.Signal) bool {
	resp, err := sc.handle(line)
	if err == errQuit {
		sig <- syscall.SIGINT
		return false
	} else if err == errNoData {
		return true
	} else if err != nil {
		sc.showError(err)
	} else if resp != nil {
		sc.showMessage(resp.message)
	}
	return true
}

// Execute runs a single command line, non-interactively.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	sc.dispatch(line, sig)
}

func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.Close()

	for {

		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		if !sc.dispatch(line, sig) {
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Close releases the terminal. It is safe to call on a controller that has
// no readline instance.
func (sc *ShellController) Close() error {
	if sc.l == nil {
		return nil
	}
	return sc.l.Close()
}

func (sc *ShellController) Cleanup() {
	if sc.game != nil {
		log.Info().Str("player", sc.game.Player().Nickname).
			Int("points", sc.game.Player().Points).
			Int("found", len(sc.game.Found())).Msg("final score")
	}
}
