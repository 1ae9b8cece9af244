package featureflag

type Flag string

const (
	// Replaces the corner/center/endpoint probing with the exact box to L1
	// ball distance test.
	FlagExactIntersection Flag = "EXACT_INTERSECTION"

	// Splits the search frontier over concurrent shards.
	FlagShardedSearch Flag = "SHARDED_SEARCH"
)
