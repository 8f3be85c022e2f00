package treeset

import (
	"runtime"
	"sync"

	"github.com/alitto/pond/v2"
)

var (
	scanPoolOnce sync.Once
	scanPool     pond.Pool
)

func pool() pond.Pool {
	scanPoolOnce.Do(func() {
		n := runtime.NumCPU()
		if n < 1 {
			n = 1
		}
		scanPool = pond.NewPool(n)
	})
	return scanPool
}

// probe calls f once per element of small, reporting whether that element
// is also a member of large. Used by combinators (Intersect in particular)
// that only need membership probes rather than a full merge scan.
//
// When small and large together hold more than threshold elements, the
// membership probes fan out across the package's worker pool; f is then
// called from pool goroutines, but probe holds an internal mutex around
// every call, so calls to f never overlap. That lock is what keeps
// res.tree.Insert in Intersect within rbtree.Tree's single-writer contract;
// Insert is not concurrency-safe by itself.
func probe[T any](small, large *Set[T], threshold int, f func(v T, inLarge bool)) {
	if small.Len()+large.Len() <= threshold {
		for v := range small.Iter() {
			f(v, large.Contains(v))
		}
		return
	}

	values := small.Values()
	var mu sync.Mutex
	guarded := func(v T, inLarge bool) {
		mu.Lock()
		defer mu.Unlock()
		f(v, inLarge)
	}

	const chunkSize = 256
	var tasks []pond.Task
	for start := 0; start < len(values); start += chunkSize {
		end := start + chunkSize
		if end > len(values) {
			end = len(values)
		}
		chunk := values[start:end]
		tasks = append(tasks, pool().Submit(func() {
			for _, v := range chunk {
				guarded(v, large.Contains(v))
			}
		}))
	}
	for _, task := range tasks {
		task.Wait()
	}
}
