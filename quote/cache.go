package quote

import "sync"

// CloseCache holds previous-close values for the life of the process.
// A previous close does not change intraday, so the first value
// recorded for a symbol wins and later Puts are no-ops. "No baseline
// known" is itself cached, so symbols without one are not looked up
// again on every cycle.
type CloseCache struct {
	mu     sync.RWMutex
	closes map[string]closeEntry
}

type closeEntry struct {
	value float64
	known bool
}

func NewCloseCache() *CloseCache {
	return &CloseCache{closes: make(map[string]closeEntry)}
}

// Get reports the cached previous close for symbol. present=false means
// no entry yet; known=false means the entry records the absence of a
// baseline.
func (c *CloseCache) Get(symbol string) (value float64, known, present bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.closes[symbol]
	return e.value, e.known, ok
}

// Put records the previous close for symbol, or its absence when
// known=false. If an entry already exists the call is a no-op.
func (c *CloseCache) Put(symbol string, value float64, known bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.closes[symbol]; ok {
		return
	}
	c.closes[symbol] = closeEntry{value: value, known: known}
}

func (c *CloseCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.closes)
}
