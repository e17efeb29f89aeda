package dotenv

import "iter"

// Env is the resolved environment produced by [Finalize]: an ordered
// mapping from key to fully-interpolated value. Keys iterate in first
// appearance order; duplicate definitions keep the last value.
type Env struct {
	keys   []string
	values map[string]string
	status map[string]Status
}

func newEnv(capacity int) *Env {
	return &Env{
		keys:   make([]string, 0, capacity),
		values: make(map[string]string, capacity),
		status: make(map[string]Status, capacity),
	}
}

func (e *Env) set(key, value string, status Status) {
	if _, ok := e.values[key]; !ok {
		e.keys = append(e.keys, key)
	}

	e.values[key] = value
	e.status[key] = status
}

// Len returns the number of distinct keys.
func (e *Env) Len() int { return len(e.keys) }

// Get returns the value for key, or the empty string when absent.
func (e *Env) Get(key string) string { return e.values[key] }

// Lookup returns the value for key and whether it is defined, permitting
// a defined-but-empty value to be distinguished from an absent one.
func (e *Env) Lookup(key string) (string, bool) {
	v, ok := e.values[key]

	return v, ok
}

// Status returns how the value for key was produced. Absent keys report
// [StatusCopied].
func (e *Env) Status(key string) Status { return e.status[key] }

// Keys returns all keys in first appearance order. The returned slice is
// shared; callers must not modify it.
func (e *Env) Keys() []string { return e.keys }

// All iterates key/value pairs in first appearance order.
func (e *Env) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range e.keys {
			if !yield(k, e.values[k]) {
				return
			}
		}
	}
}
