package cpulocal

import "runtime"

// currentGoroutineIDSlow extracts a goroutine identity by parsing the
// header line of runtime.Stack's output ("goroutine 123 [running]:").
// ~1-2µs per call, paid on every [ShardFor] call since the id is the
// key [ShardFor] looks its cache up by.
func currentGoroutineIDSlow() int64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	return parseGID(buf[:n])
}

// parseGID parses the decimal goroutine id out of a stack header of
// the form "goroutine 123 [running]:\n...". Returns 0 if the expected
// prefix isn't found, which callers treat as "shard 0" — a degraded
// but safe fallback, never a panic.
func parseGID(header []byte) int64 {
	const prefix = "goroutine "
	if len(header) <= len(prefix) || string(header[:len(prefix)]) != prefix {
		return 0
	}
	rest := header[len(prefix):]

	var id int64
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		id = id*10 + int64(rest[i]-'0')
		i++
	}
	return id
}
