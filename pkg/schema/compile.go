package schema

import (
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/casskeeper/casskeeper/pkg/cql"
	"github.com/casskeeper/casskeeper/pkg/spec"
)

// knownTableOptions maps option names from definition files to the
// predefined options and their rendering hints.
var knownTableOptions = map[string]cql.Option{
	cql.CommentOption.Name():             cql.CommentOption,
	cql.CompactionOption.Name():          cql.CompactionOption,
	cql.CompressionOption.Name():         cql.CompressionOption,
	cql.CachingOption.Name():             cql.CachingOption,
	cql.BloomFilterFPChanceOption.Name(): cql.BloomFilterFPChanceOption,
	cql.GCGraceSecondsOption.Name():      cql.GCGraceSecondsOption,
	cql.DefaultTimeToLiveOption.Name():   cql.DefaultTimeToLiveOption,
	cql.SpeculativeRetryOption.Name():    cql.SpeculativeRetryOption,
	cql.MemtableFlushPeriodOption.Name(): cql.MemtableFlushPeriodOption,
}

// Compile turns the definition into the ordered list of specifications that
// creates the schema from scratch: each keyspace, then its types, tables,
// and indexes, in declaration order. Every compiled specification is
// validated so a broken definition fails here rather than at generation
// time.
func (d *Definition) Compile() ([]spec.Specification, error) {
	var specs []spec.Specification

	for _, ks := range d.Keyspaces {
		keyspace, err := compileKeyspace(ks)
		if err != nil {
			return nil, err
		}
		specs = append(specs, keyspace)

		for _, ut := range ks.Types {
			s := spec.CreateUserType(ut.Name).InKeyspace(ks.Name)
			if ut.IfNotExists {
				s.IfNotExists()
			}
			for _, f := range ut.Fields {
				s.Field(f.Name, f.Type)
			}
			if err := s.Validate(); err != nil {
				return nil, errors.Wrapf(err, "type %s", ut.Name)
			}
			specs = append(specs, s)
		}

		for _, table := range ks.Tables {
			s, err := compileTable(ks.Name, table)
			if err != nil {
				return nil, err
			}
			specs = append(specs, s)

			for _, idx := range table.Indexes {
				i := spec.CreateIndex(idx.Name, table.Name, idx.Column).InKeyspace(ks.Name)
				if idx.IfNotExists {
					i.IfNotExists()
				}
				if idx.Function != "" {
					i.ColumnFunction(idx.Function)
				}
				if idx.Using != "" {
					i.Using(idx.Using)
				}
				for _, opt := range idx.Options {
					i.WithOption(opt.Name, opt.Value)
				}
				if err := i.Validate(); err != nil {
					return nil, errors.Wrapf(err, "index on %s.%s", table.Name, idx.Column)
				}
				specs = append(specs, i)
			}
		}
	}

	return specs, nil
}

func compileKeyspace(ks Keyspace) (*spec.CreateKeyspaceSpecification, error) {
	s := spec.CreateKeyspace(ks.Name)
	if ks.IfNotExists {
		s.IfNotExists()
	}

	if ks.Replication != nil {
		switch ks.Replication.Class {
		case cql.SimpleStrategy:
			s.WithSimpleReplication(ks.Replication.Factor)
		case cql.NetworkTopologyStrategy:
			dcs := make([]cql.DataCenter, 0, len(ks.Replication.Datacenters))
			for _, dc := range ks.Replication.Datacenters {
				dcs = append(dcs, cql.DataCenter{Name: dc.Name, Replicas: dc.Replicas})
			}
			s.WithNetworkReplication(dcs...)
		default:
			return nil, errors.Errorf("keyspace %s: unknown replication class %q", ks.Name, ks.Replication.Class)
		}
	}

	if ks.DurableWrites != nil {
		s.WithDurableWrites(*ks.DurableWrites)
	}

	if err := s.Validate(); err != nil {
		return nil, errors.Wrapf(err, "keyspace %s", ks.Name)
	}
	return s, nil
}

func compileTable(keyspace string, table Table) (*spec.CreateTableSpecification, error) {
	s := spec.CreateTable(table.Name).InKeyspace(keyspace)
	if table.IfNotExists {
		s.IfNotExists()
	}

	for _, col := range table.Columns {
		switch col.Key {
		case "":
			s.Column(col.Name, col.Type)
		case "partition":
			s.PartitionKeyColumn(col.Name, col.Type)
		case "cluster":
			ordering, err := parseOrdering(col.Order)
			if err != nil {
				return nil, errors.Wrapf(err, "table %s column %s", table.Name, col.Name)
			}
			s.ClusteredKeyColumnOrdered(col.Name, col.Type, ordering)
		default:
			return nil, errors.Errorf("table %s column %s: unknown key role %q", table.Name, col.Name, col.Key)
		}
	}

	if err := applyTableOptions(s, &table.Options); err != nil {
		return nil, errors.Wrapf(err, "table %s", table.Name)
	}

	if err := s.Validate(); err != nil {
		return nil, errors.Wrapf(err, "table %s", table.Name)
	}
	return s, nil
}

func parseOrdering(order string) (spec.Ordering, error) {
	switch order {
	case "":
		return spec.OrderingUnspecified, nil
	case "asc":
		return spec.Ascending, nil
	case "desc":
		return spec.Descending, nil
	default:
		return spec.OrderingUnspecified, errors.Errorf("unknown ordering %q", order)
	}
}

// applyTableOptions walks the options mapping node in document order, which
// keeps the rendered WITH clause in the order the file declares.
func applyTableOptions(s *spec.CreateTableSpecification, node *yaml.Node) error {
	if node.Kind == 0 || node.IsZero() {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return errors.New("options must be a mapping")
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		value := node.Content[i+1]

		if name == "compact_storage" {
			var enabled bool
			if err := value.Decode(&enabled); err != nil {
				return errors.Wrap(err, "compact_storage")
			}
			if enabled {
				s.WithCompactStorage()
			}
			continue
		}

		opt, ok := knownTableOptions[name]
		if !ok {
			opt = optionForNode(name, value)
		}

		v, err := optionValue(value)
		if err != nil {
			return errors.Wrapf(err, "option %s", name)
		}
		s.With(opt, v)
	}
	return nil
}

// optionForNode derives rendering hints for an option not in the known set:
// string scalars get escaped and quoted, everything else renders raw.
func optionForNode(name string, node *yaml.Node) cql.Option {
	quoted := node.Kind == yaml.ScalarNode && node.Tag == "!!str"
	return cql.NewOption(name, true, quoted, quoted)
}

// optionValue converts a YAML value node into an option value: scalars stay
// scalars and mappings become nested option maps in document order.
func optionValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return scalarValue(node)
	case yaml.MappingNode:
		nested := cql.NewOptionMap()
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			value := node.Content[i+1]

			v, err := scalarValue(value)
			if err != nil {
				return nil, errors.Wrapf(err, "key %s", key)
			}
			nested.Set(optionForNode(key, value), v)
		}
		return nested, nil
	default:
		return nil, errors.New("option values must be scalars or mappings")
	}
}

func scalarValue(node *yaml.Node) (any, error) {
	if node.Kind != yaml.ScalarNode {
		return nil, errors.New("expected a scalar value")
	}

	switch node.Tag {
	case "!!int":
		return strconv.Atoi(node.Value)
	case "!!float":
		return strconv.ParseFloat(node.Value, 64)
	case "!!bool":
		return strconv.ParseBool(node.Value)
	case "!!null":
		return nil, nil
	default:
		return node.Value, nil
	}
}
