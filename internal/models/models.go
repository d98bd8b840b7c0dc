package models

import "math"

// All returns every model managed by auto-migration, parents first
func All() []any {
	return []any{&Video{}, &Annotation{}}
}

// IDInRange reports whether id fits the signed 64-bit key columns every supported store uses
func IDInRange(id uint) bool {
	return uint64(id) <= math.MaxInt64
}
