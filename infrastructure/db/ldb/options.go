package ldb

import "github.com/syndtr/goleveldb/leveldb/opt"

var (
	defaultOptions = opt.Options{
		Compression:            opt.NoCompression,
		BlockCacheCapacity:     64 * opt.MiB,
		WriteBuffer:            32 * opt.MiB,
		DisableSeeksCompaction: true,
	}

	// Options returns the options used to open a database.
	// It's a variable so tests can shrink the caches.
	Options = func() *opt.Options {
		return &defaultOptions
	}
)
