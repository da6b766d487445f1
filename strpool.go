package paperplot

// StringPool interns strings and remembers the order in which they were
// first seen. The figure legend uses it to list every label once, in the
// order the panels introduced them.
type StringPool struct {
	index map[string]int
	pool  []string
}

func NewStringPool() *StringPool {
	return &StringPool{index: make(map[string]int)}
}

// Add returns the index of s, adding it if it is new.
func (sp *StringPool) Add(s string) int {
	if i := sp.Find(s); i != -1 {
		return i
	}
	sp.pool = append(sp.pool, s)
	sp.index[s] = len(sp.pool) - 1
	return len(sp.pool) - 1
}

// Find returns the index of s or -1.
func (sp *StringPool) Find(s string) int {
	if i, ok := sp.index[s]; ok {
		return i
	}
	return -1
}

func (sp *StringPool) Get(i int) string {
	if i < 0 || i >= len(sp.pool) {
		return "--NA--"
	}

	return sp.pool[i]
}

func (sp *StringPool) Len() int { return len(sp.pool) }
