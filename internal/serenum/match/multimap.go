package match

import (
	"iter"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// multiMap relates a key to many values. Keys and values keep their insertion
// order.
type multiMap[K, V comparable] struct {
	m *linkedhashmap.Map // K -> *linkedhashset.Set of V
}

func newMultiMap[K, V comparable]() *multiMap[K, V] {
	return &multiMap[K, V]{m: linkedhashmap.New()}
}

func (m *multiMap[K, V]) Add(k K, v V) {
	s, ok := m.m.Get(k)
	if !ok {
		s = linkedhashset.New()
		m.m.Put(k, s)
	}
	s.(*linkedhashset.Set).Add(v)
}

// All iterates all pairs grouped by keys.
func (m *multiMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := m.m.Iterator(); it.Next(); {
			k := it.Key().(K)
			for vit := it.Value().(*linkedhashset.Set).Iterator(); vit.Next(); {
				if !yield(k, vit.Value().(V)) {
					return
				}
			}
		}
	}
}
