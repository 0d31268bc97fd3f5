package feedback

// FilterSet maps each categorical attribute to an optional sanitized value.
// An absent attribute imposes no constraint. Values are only ever inserted
// through Set, so every present value is a member of its enumeration.
type FilterSet struct {
	values map[string]string
}

func NewFilterSet() FilterSet {
	return FilterSet{values: make(map[string]string)}
}

// Set sanitizes raw against the attribute's enumeration and records the
// result. An empty raw value means "no constraint" and records nothing.
func (f FilterSet) Set(attribute, raw string) {
	if raw == "" {
		return
	}
	f.values[attribute] = Sanitize(attribute, raw)
}

func (f FilterSet) Get(attribute string) (string, bool) {
	v, ok := f.values[attribute]
	return v, ok
}

func (f FilterSet) Len() int {
	return len(f.values)
}
