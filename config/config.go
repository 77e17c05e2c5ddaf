package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDataPath    = "data-path"
	ConfigBoardFile   = "board-file"
	ConfigWordsFile   = "words-file"
	ConfigPuzzleFile  = "puzzle-file"
	ConfigEncoding    = "encoding"
	ConfigNickname    = "nickname"
	ConfigDebug       = "debug"
	ConfigHistoryFile = "history-file"
)

type Config struct {
	*viper.Viper
}

func DefaultConfig() Config {
	c := Config{viper.New()}
	c.SetDefault(ConfigDataPath, "./data")
	c.SetDefault(ConfigBoardFile, "")
	c.SetDefault(ConfigWordsFile, "")
	c.SetDefault(ConfigPuzzleFile, "")
	c.SetDefault(ConfigEncoding, "utf8")
	c.SetDefault(ConfigNickname, "player")
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigHistoryFile, "/tmp/wordgrid-readline.tmp")
	return c
}

// Load parses command-line flags and WORDGRID_ environment variables into
// the config. Flags win over the environment. Arguments that are not
// flags are returned so they can be run as a shell command.
func (c *Config) Load(args []string) ([]string, error) {
	if c.Viper == nil {
		*c = DefaultConfig()
	}
	fs := pflag.NewFlagSet("wordgrid", pflag.ContinueOnError)
	fs.String(ConfigDataPath, c.GetString(ConfigDataPath), "directory holding boards, word lists and puzzles")
	fs.String(ConfigBoardFile, c.GetString(ConfigBoardFile), "board file to load on startup")
	fs.String(ConfigWordsFile, c.GetString(ConfigWordsFile), "word list file to load on startup")
	fs.String(ConfigPuzzleFile, c.GetString(ConfigPuzzleFile), "YAML puzzle to load on startup")
	fs.String(ConfigEncoding, c.GetString(ConfigEncoding), "encoding of board and word files: utf8 or latin1")
	fs.String(ConfigNickname, c.GetString(ConfigNickname), "the name of the player")
	fs.Bool(ConfigDebug, c.GetBool(ConfigDebug), "debug logging on")
	fs.String(ConfigHistoryFile, c.GetString(ConfigHistoryFile), "readline history file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := c.BindPFlags(fs); err != nil {
		return nil, err
	}
	c.SetEnvPrefix("wordgrid")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	return fs.Args(), nil
}

// AdjustRelativePaths makes the data path absolute, relative to basePath,
// if it isn't already.
func (c *Config) AdjustRelativePaths(basePath string) {
	p := c.GetString(ConfigDataPath)
	if p != "" && !filepath.IsAbs(p) {
		c.Set(ConfigDataPath, filepath.Join(basePath, p))
	}
}

// DataFile resolves a file name against the data path. Absolute names and
// names that start with ./ or ../ are left alone.
func (c *Config) DataFile(name string) string {
	if name == "" || filepath.IsAbs(name) || strings.HasPrefix(name, "./") || strings.HasPrefix(name, "../") {
		return name
	}
	return filepath.Join(c.GetString(ConfigDataPath), name)
}

func (c *Config) SanitizedSettings() string {
	keys := []string{ConfigDataPath, ConfigBoardFile, ConfigWordsFile, ConfigPuzzleFile,
		ConfigEncoding, ConfigNickname, ConfigDebug}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, c.Get(k))
	}
	return strings.Join(parts, " ")
}
