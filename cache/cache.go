package cache

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// The cache holds loaded boards, word lists and puzzles, keyed by the file
// they came from, so that reloading the same puzzle in the shell does not
// hit the disk again.

type cache struct {
	sync.Mutex
	objects map[string]interface{}
}

type LoadFunc func(key string) (interface{}, error)

// GlobalObjectCache is our global object cache, of course.
var GlobalObjectCache *cache

func (c *cache) load(key string, loadFunc LoadFunc) error {
	log.Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(key)
	if err != nil {
		return err
	}
	c.objects[key] = obj

	return nil
}

func (c *cache) get(key string, loadFunc LoadFunc) (interface{}, error) {

	var ok bool
	var obj interface{}
	c.Lock()
	defer c.Unlock()
	if obj, ok = c.objects[key]; !ok {
		err := c.load(key, loadFunc)
		if err != nil {
			return nil, err
		}
		return c.objects[key], nil
	}
	log.Debug().Str("key", key).Msg("getting obj from cache")

	return obj, nil
}

func (c *cache) evict(key string) {
	c.Lock()
	defer c.Unlock()
	delete(c.objects, key)
}

func CreateGlobalObjectCache() {
	GlobalObjectCache = &cache{objects: make(map[string]interface{})}
}

func Load(name string, loadFunc LoadFunc) (interface{}, error) {
	if GlobalObjectCache == nil {
		CreateGlobalObjectCache()
	}
	return GlobalObjectCache.get(name, loadFunc)
}

// Evict forgets name, so the next Load calls its load function again.
func Evict(name string) {
	if GlobalObjectCache == nil {
		return
	}
	GlobalObjectCache.evict(name)
}
