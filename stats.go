package object

// Metric names reported by Manager.
const (
	MetricPut    = "object_cache_put"
	MetricUpdate = "object_cache_update"
	MetricHit    = "object_cache_hit"
	MetricMiss   = "object_cache_miss"
	MetricRemove = "object_cache_remove"
	MetricFlush  = "object_cache_flush"
	MetricItems  = "object_cache_items"
)
