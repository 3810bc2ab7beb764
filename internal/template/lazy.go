package template

import (
	"sync"

	"github.com/modu-ai/uiprompt/pkg/models"
)

// lazyGenerator resolves its underlying Generator on first use and reuses
// the result, or the resolution error, for every later call.
type lazyGenerator struct {
	once sync.Once
	load func() (Generator, error)
	gen  Generator
	err  error
}

// Lazy wraps a deferred generator load in a memoizing cell. load runs at
// most once, on the first Generate call.
func Lazy(load func() (Generator, error)) Generator {
	return &lazyGenerator{load: load}
}

func (l *lazyGenerator) resolve() (Generator, error) {
	l.once.Do(func() {
		l.gen, l.err = l.load()
	})
	return l.gen, l.err
}

// Generate implements Generator.
func (l *lazyGenerator) Generate(cfg models.Configuration, stack models.TechStack) (string, error) {
	g, err := l.resolve()
	if err != nil {
		return "", err
	}
	return g.Generate(cfg, stack)
}
