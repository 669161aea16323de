package cql

// Option is a named configuration key used inside statement option maps and
// WITH clauses. The two flags are rendering hints consumed by the generator:
// whether the option's value has embedded single quotes doubled, and whether
// the (possibly escaped) value is wrapped in single quotes.
//
// Two options are equal iff their names are equal; the flags never
// participate in identity.
type Option struct {
	name       string
	takesValue bool
	escapes    bool
	quotes     bool
}

// NewOption creates an option with the given name and rendering hints.
func NewOption(name string, takesValue, escapes, quotes bool) Option {
	return Option{name: name, takesValue: takesValue, escapes: escapes, quotes: quotes}
}

// Name returns the option's name as it appears in generated statements.
func (o Option) Name() string { return o.name }

// TakesValue reports whether the option carries a value. Valueless options
// (such as COMPACT STORAGE) render as a bare keyword.
func (o Option) TakesValue() bool { return o.takesValue }

// EscapesValue reports whether embedded single quotes in the value are
// doubled on render.
func (o Option) EscapesValue() bool { return o.escapes }

// QuotesValue reports whether the rendered value is wrapped in single quotes.
func (o Option) QuotesValue() bool { return o.quotes }

// Equal reports whether two options share a name. Rendering hints are
// ignored.
func (o Option) Equal(other Option) bool { return o.name == other.name }

// Keyspace options understood by the keyspace generators.
var (
	// ReplicationOption carries the replication strategy map. Its value is
	// always an *OptionMap and is the only option for which a nested map
	// value is legal.
	ReplicationOption = NewOption("replication", true, false, false)

	// DurableWritesOption toggles the keyspace commit log.
	DurableWritesOption = NewOption("durable_writes", true, false, false)
)

// Table options understood by the table generators.
var (
	CommentOption             = NewOption("comment", true, true, true)
	CompactionOption          = NewOption("compaction", true, false, false)
	CompressionOption         = NewOption("compression", true, false, false)
	CachingOption             = NewOption("caching", true, false, false)
	BloomFilterFPChanceOption = NewOption("bloom_filter_fp_chance", true, false, false)
	GCGraceSecondsOption      = NewOption("gc_grace_seconds", true, false, false)
	DefaultTimeToLiveOption   = NewOption("default_time_to_live", true, false, false)
	SpeculativeRetryOption    = NewOption("speculative_retry", true, true, true)
	MemtableFlushPeriodOption = NewOption("memtable_flush_period_in_ms", true, false, false)

	// CompactStorageOption is only legal on table creation; the alter-table
	// generator rejects it.
	CompactStorageOption = NewOption("COMPACT STORAGE", false, false, false)
)

// Replication map keys used when building replication strategy values.
var (
	ReplicationClassOption  = NewOption("class", true, true, true)
	ReplicationFactorOption = NewOption("replication_factor", true, false, false)
)

// Replication strategy class names.
const (
	SimpleStrategy          = "SimpleStrategy"
	NetworkTopologyStrategy = "NetworkTopologyStrategy"
)
