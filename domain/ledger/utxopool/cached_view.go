package utxopool

import (
	"github.com/utxogate/utxogate/domain/ledger/model/externalapi"
)

// CachedView caches lookups of an underlying view. Since views never change,
// cached entries never go stale. CachedView is not safe for concurrent use.
type CachedView struct {
	view     externalapi.UTXOView
	cache    map[externalapi.UTXOID]cachedLookup
	capacity int
}

type cachedLookup struct {
	utxo  externalapi.UTXO
	found bool
}

// NewCachedView returns a CachedView over view holding at most capacity
// lookups, misses included.
func NewCachedView(view externalapi.UTXOView, capacity int) *CachedView {
	return &CachedView{
		view:     view,
		cache:    make(map[externalapi.UTXOID]cachedLookup, capacity+1),
		capacity: capacity,
	}
}

// GetUTXO returns the cached lookup for (transactionID, outputIndex),
// falling back to the underlying view. Errors are not cached.
func (c *CachedView) GetUTXO(transactionID string, outputIndex uint32) (*externalapi.UTXO, bool, error) {
	id := externalapi.UTXOID{TransactionID: transactionID, OutputIndex: outputIndex}
	if lookup, ok := c.cache[id]; ok {
		if !lookup.found {
			return nil, false, nil
		}
		utxo := lookup.utxo
		return &utxo, true, nil
	}

	utxo, found, err := c.view.GetUTXO(transactionID, outputIndex)
	if err != nil {
		return nil, false, err
	}
	lookup := cachedLookup{found: found}
	if found {
		lookup.utxo = *utxo
	}
	c.add(id, lookup)
	return utxo, found, nil
}

// Len returns the number of cached lookups.
func (c *CachedView) Len() int {
	return len(c.cache)
}

func (c *CachedView) add(id externalapi.UTXOID, lookup cachedLookup) {
	if c.capacity <= 0 {
		return
	}
	c.cache[id] = lookup
	if len(c.cache) > c.capacity {
		c.evictRandom()
	}
}

// evictRandom relies on map iteration order being unspecified.
func (c *CachedView) evictRandom() {
	for id := range c.cache {
		delete(c.cache, id)
		return
	}
}
