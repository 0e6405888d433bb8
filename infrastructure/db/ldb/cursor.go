package ldb

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LevelDBCursor is a thin wrapper around native leveldb iterators.
type LevelDBCursor struct {
	iterator iterator.Iterator
	isClosed bool
}

func newCursor(it iterator.Iterator) *LevelDBCursor {
	return &LevelDBCursor{iterator: it}
}

func bytesPrefix(prefix []byte) *util.Range {
	if len(prefix) == 0 {
		return nil
	}
	return util.BytesPrefix(prefix)
}

// Next moves the iterator to the next key/value pair. It returns whether the
// iterator is exhausted. Panics if the cursor is closed.
func (c *LevelDBCursor) Next() bool {
	if c.isClosed {
		panic("cannot call next on a closed cursor")
	}
	return c.iterator.Next()
}

// Key returns the key of the current key/value pair. The returned slice is a
// copy.
func (c *LevelDBCursor) Key() ([]byte, error) {
	if c.isClosed {
		return nil, errors.New("cannot get the key of a closed cursor")
	}
	key := c.iterator.Key()
	if key == nil {
		return nil, errors.New("cursor is exhausted")
	}
	return append([]byte(nil), key...), nil
}

// Value returns the value of the current key/value pair. The returned slice
// is a copy.
func (c *LevelDBCursor) Value() ([]byte, error) {
	if c.isClosed {
		return nil, errors.New("cannot get the value of a closed cursor")
	}
	value := c.iterator.Value()
	if value == nil {
		return nil, errors.New("cursor is exhausted")
	}
	return append([]byte(nil), value...), nil
}

// Close releases associated resources and returns the iteration error, if
// any.
func (c *LevelDBCursor) Close() error {
	if c.isClosed {
		return errors.New("cannot close an already closed cursor")
	}
	c.isClosed = true
	err := c.iterator.Error()
	c.iterator.Release()
	return errors.WithStack(err)
}
