package mathematics

// termmap accumulates a coefficient or exponent for each structurally distinct
// expression. Colliding hashes share a bucket and are told apart by Equal.
type termmap struct {
	// buckets maps hashes to indices into keys and vals.
	buckets map[uint64][]int
	keys    []*Expr
	vals    []float64
}

func newTermmap(size int) *termmap {
	return &termmap{
		buckets: make(map[uint64][]int, size),
		keys:    make([]*Expr, 0, size),
		vals:    make([]float64, 0, size),
	}
}

// add adds v to the value for key, inserting key with value v if it is not
// yet present.
func (m *termmap) add(key *Expr, v float64) {
	h := key.Hash()
	b := m.buckets[h]
	for _, i := range b {
		if m.keys[i].Equal(key) {
			m.vals[i] += v
			return
		}
	}
	m.buckets[h] = append(b, len(m.keys))
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, v)
}

// get returns the value for key.
func (m *termmap) get(key *Expr) (float64, bool) {
	for _, i := range m.buckets[key.Hash()] {
		if m.keys[i].Equal(key) {
			return m.vals[i], true
		}
	}
	return 0, false
}

// len returns the number of distinct keys.
func (m *termmap) len() int {
	return len(m.keys)
}
