package memory

import "iter"

// compactMin is the allocation-order length below which tombstones are never
// compacted away.
const compactMin = 64

// table is a sparse slot collection keyed by identity. order records ids in
// allocation order; deleted ids stay in order as tombstones until compaction.
type table[T any] struct {
	rows  map[int64]T
	order []int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T)}
}

func (t *table[T]) insert(id int64, v T) {
	t.rows[id] = v
	t.order = append(t.order, id)
}

func (t *table[T]) get(id int64) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) delete(id int64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	if len(t.order) >= compactMin && len(t.order) > 2*len(t.rows) {
		t.compact()
	}
	return true
}

func (t *table[T]) compact() {
	live := make([]int64, 0, len(t.rows))
	for _, id := range t.order {
		if _, ok := t.rows[id]; ok {
			live = append(live, id)
		}
	}
	t.order = live
}

// all yields live rows in allocation order.
func (t *table[T]) all() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, id := range t.order {
			v, ok := t.rows[id]
			if !ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

func (t *table[T]) len() int {
	return len(t.rows)
}
