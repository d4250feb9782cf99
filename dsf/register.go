package dsf

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	mu sync.RWMutex
	d  = map[string]Provider{}
)

var ErrProviderExists = errors.New("provider exists")

func Register(p Provider) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := d[p.Name()]
	if present {
		return fmt.Errorf("%s: %w", p.Name(), ErrProviderExists)
	}
	d[p.Name()] = p
	return nil
}

func init() {
	Register(Math())
	Register(Hex(true))
}

func Lookup(s string) Provider {
	mu.RLock()
	defer mu.RUnlock()
	return d[s]
}

// Providers returns the registered providers sorted by name.
func Providers() []Provider {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]Provider, 0, len(d))
	for _, p := range d {
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name() < res[j].Name() })
	return res
}

// Std returns the standard provider set: math values and, for reading
// only, hex numbers.
func Std() []Provider {
	return []Provider{Math(), Hex(false)}
}
