package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> any (value of the struct type)
	loadMu     sync.Mutex
)

// Load populates cfg from the environment. The first call for a type parses
// the environment; later calls for the same type copy the cached value.
// A .env file in the working directory is loaded once, without overriding
// variables that are already set.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("config: nil target")
	}

	typ := reflect.TypeFor[T]()
	if v, ok := cache.Load(typ); ok {
		*cfg = v.(T)
		return nil
	}

	loadMu.Lock()
	defer loadMu.Unlock()

	if v, ok := cache.Load(typ); ok {
		*cfg = v.(T)
		return nil
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	var loaded T
	if err := env.Parse(&loaded); err != nil {
		return fmt.Errorf("config: parse %s: %w", typ, err)
	}
	cache.Store(typ, loaded)
	*cfg = loaded
	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Parse populates cfg from the environment without caching.
func Parse[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("config: nil target")
	}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", reflect.TypeFor[T](), err)
	}
	return nil
}
