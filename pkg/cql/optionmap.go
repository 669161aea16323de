package cql

// OptionEntry is a single (option, value) pair inside an OptionMap. A nil
// Value models Cassandra's valueless map entries and renders as a key with an
// empty value.
type OptionEntry struct {
	Option Option
	Value  any
}

// OptionMap is an insertion-ordered map from Option to value. Iteration
// order is render order, so two maps built with the same Set calls render
// byte-identically. Values may be scalars or, for the replication option,
// a nested *OptionMap.
//
// The zero value is an empty, ready-to-use map.
type OptionMap struct {
	entries []OptionEntry
}

// NewOptionMap returns an empty option map.
func NewOptionMap() *OptionMap {
	return &OptionMap{}
}

// Set adds option with the given value, or replaces the value in place if an
// equal option is already present. Replacing keeps the original position so
// render order stays stable.
func (m *OptionMap) Set(opt Option, value any) *OptionMap {
	for i, e := range m.entries {
		if e.Option.Equal(opt) {
			m.entries[i].Value = value
			return m
		}
	}
	m.entries = append(m.entries, OptionEntry{Option: opt, Value: value})
	return m
}

// Get returns the value stored for opt and whether it is present.
func (m *OptionMap) Get(opt Option) (any, bool) {
	for _, e := range m.entries {
		if e.Option.Equal(opt) {
			return e.Value, true
		}
	}
	return nil, false
}

// Has reports whether opt is present.
func (m *OptionMap) Has(opt Option) bool {
	_, ok := m.Get(opt)
	return ok
}

// Len returns the number of entries.
func (m *OptionMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Entries returns the entries in insertion order. The returned slice is
// shared with the map and must not be modified.
func (m *OptionMap) Entries() []OptionEntry {
	if m == nil {
		return nil
	}
	return m.entries
}

// SimpleReplication builds the replication map for SimpleStrategy with the
// given replication factor.
//
// Example:
//
//	cql.SimpleReplication(3) // {'class': 'SimpleStrategy', 'replication_factor': 3}
func SimpleReplication(factor int) *OptionMap {
	return NewOptionMap().
		Set(ReplicationClassOption, SimpleStrategy).
		Set(ReplicationFactorOption, factor)
}

// NetworkReplication builds the replication map for NetworkTopologyStrategy.
// Datacenters render in argument order.
func NetworkReplication(dcs ...DataCenter) *OptionMap {
	m := NewOptionMap().Set(ReplicationClassOption, NetworkTopologyStrategy)
	for _, dc := range dcs {
		m.Set(NewOption(dc.Name, true, false, false), dc.Replicas)
	}
	return m
}

// DataCenter names a datacenter and its replica count for
// NetworkTopologyStrategy replication.
type DataCenter struct {
	Name     string
	Replicas int
}
