package responses

// field maps one payload key, optionally inside a nested group such as "quote" or
// "transaction.security", onto an optional string field of T. An absent group or key
// leaves the field nil.
type field[T any] struct {
	group string
	key   string
	set   func(*T) **string
}

func populate[T any](src source, schema []field[T], dst *T) {
	for _, f := range schema {
		g, ok := groupPath(src, f.group)
		if !ok {
			continue
		}

		v, ok := g.value(f.key)
		if !ok {
			continue
		}

		val := v
		*f.set(dst) = &val
	}
}

func parseAll[T any](srcs []source, schema []field[T]) []*T {
	out := make([]*T, 0, len(srcs))
	for _, src := range srcs {
		item := new(T)
		populate(src, schema, item)
		out = append(out, item)
	}

	return out
}

// Value dereferences an optional field, returning "" when it is absent.
func Value(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
