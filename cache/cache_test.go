package cache

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestLoadCaches(t *testing.T) {
	is := is.New(t)
	CreateGlobalObjectCache()
	calls := 0
	loader := func(key string) (interface{}, error) {
		calls++
		return "loaded " + key, nil
	}
	obj, err := Load("board.txt", loader)
	is.NoErr(err)
	is.Equal(obj.(string), "loaded board.txt")
	obj, err = Load("board.txt", loader)
	is.NoErr(err)
	is.Equal(obj.(string), "loaded board.txt")
	is.Equal(calls, 1)

	Evict("board.txt")
	_, err = Load("board.txt", loader)
	is.NoErr(err)
	is.Equal(calls, 2)
}

func TestLoadErrorNotCached(t *testing.T) {
	is := is.New(t)
	CreateGlobalObjectCache()
	boom := errors.New("boom")
	_, err := Load("words.txt", func(string) (interface{}, error) { return nil, boom })
	is.Equal(err, boom)
	obj, err := Load("words.txt", func(string) (interface{}, error) { return 3, nil })
	is.NoErr(err)
	is.Equal(obj.(int), 3)
}
