package utils

import "time"

// SlotCachePrefix is the prefix used for Redis available-slot cache keys.
const SlotCachePrefix = "slots:"

// SlotCacheTTL is the time-to-live for available-slot cache entries. Kept
// short because bookings from other instances invalidate only their own key.
const SlotCacheTTL = 30 * time.Second
