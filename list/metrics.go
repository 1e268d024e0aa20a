package list

// NoopMetrics is a drop-in Metrics implementation that does nothing.
// It is the default when no observability backend is configured.
type NoopMetrics struct{}

func (NoopMetrics) Insert()                   {}
func (NoopMetrics) Remove()                   {}
func (NoopMetrics) Misuse(Op)                 {}
func (NoopMetrics) Grow(capacity int)         {}
func (NoopMetrics) Reindex(slots int)         {}
func (NoopMetrics) Sort(n int)                {}
func (NoopMetrics) Size(length, capacity int) {}

// Ensure NoopMetrics implements the Metrics interface at compile time.
var _ Metrics = NoopMetrics{}
