package ldb

import "github.com/syndtr/goleveldb/leveldb"

// Batch collects puts and deletes to be written atomically by LevelDB.Write.
type Batch struct {
	batch *leveldb.Batch
}

// NewBatch returns an empty batch.
func NewBatch() *Batch {
	return &Batch{batch: new(leveldb.Batch)}
}

// Put appends a put operation.
func (b *Batch) Put(key []byte, value []byte) {
	b.batch.Put(key, value)
}

// Delete appends a delete operation.
func (b *Batch) Delete(key []byte) {
	b.batch.Delete(key)
}

// Len returns the number of operations in the batch.
func (b *Batch) Len() int {
	return b.batch.Len()
}
