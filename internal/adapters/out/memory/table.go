package memory

// table keeps rows by key and remembers insertion order.
type table[T any] struct {
	keys []string
	rows map[string]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) insert(key string, row T) bool {
	if _, exists := t.rows[key]; exists {
		return false
	}
	t.keys = append(t.keys, key)
	t.rows[key] = row
	return true
}

func (t *table[T]) list(clone func(T) T) []T {
	out := make([]T, 0, len(t.keys))
	for _, key := range t.keys {
		out = append(out, clone(t.rows[key]))
	}
	return out
}

// changeSet stages the writes of one unit of work on top of a table.
// Rows handed in or out are cloned, so callers never share memory with the
// committed state.
type changeSet[T any] struct {
	base    *table[T]
	clone   func(T) T
	staged  map[string]T
	created []string
}

func newChangeSet[T any](base *table[T], clone func(T) T) *changeSet[T] {
	return &changeSet[T]{
		base:   base,
		clone:  clone,
		staged: make(map[string]T),
	}
}

func (c *changeSet[T]) get(key string) (T, bool) {
	if row, ok := c.staged[key]; ok {
		return c.clone(row), true
	}
	row, ok := c.base.rows[key]
	if !ok {
		var zero T
		return zero, false
	}
	return c.clone(row), true
}

func (c *changeSet[T]) exists(key string) bool {
	if _, ok := c.staged[key]; ok {
		return true
	}
	_, ok := c.base.rows[key]
	return ok
}

func (c *changeSet[T]) all() []T {
	out := make([]T, 0, len(c.base.keys)+len(c.created))
	for _, key := range c.base.keys {
		row, _ := c.get(key)
		out = append(out, row)
	}
	for _, key := range c.created {
		out = append(out, c.clone(c.staged[key]))
	}
	return out
}

func (c *changeSet[T]) add(key string, row T) bool {
	if c.exists(key) {
		return false
	}
	c.staged[key] = c.clone(row)
	c.created = append(c.created, key)
	return true
}

func (c *changeSet[T]) update(key string, row T) bool {
	if !c.exists(key) {
		return false
	}
	c.staged[key] = c.clone(row)
	return true
}

// apply writes the staged rows into the base table. The caller holds the
// state's mutex.
func (c *changeSet[T]) apply() {
	c.base.keys = append(c.base.keys, c.created...)
	for key, row := range c.staged {
		c.base.rows[key] = row
	}
}
