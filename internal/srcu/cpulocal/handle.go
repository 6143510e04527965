package cpulocal

// Handle is a goroutine's cached shard assignment for one [Table]: a
// small value computed once per goroutine and reused on every
// subsequent call instead of recomputed from scratch.
type Handle struct {
	// gid is the goroutine identity the shard index was derived from.
	// Nothing in this package reads it back.
	gid int64

	// Shard is the assigned index into the owning Table.
	Shard int
}

// newHandle derives a Handle from a goroutine id and a table size.
//
// tableLen is normally a power of two (see [ShardCountFor]), in which
// case this reduces to a bitwise AND at the call site's discretion;
// modulo is used unconditionally here so a non-power-of-two Table
// (constructed directly via [NewTable]) still gets a valid, if
// slightly biased, distribution instead of an out-of-range index.
func newHandle(gid int64, tableLen int) *Handle {
	return &Handle{
		gid:   gid,
		Shard: int(uint64(gid) % uint64(tableLen)),
	}
}
