package list

import "fmt"

// Check validates the ring invariants of a list: walking the next links from
// the sentinel visits exactly Size() nodes and returns to the sentinel, the
// same holds for the prev links, and every link has a matching back link.
//
// Check terminates on corrupted rings; it is meant to be used in tests.
func (l *List[T]) Check() error {
	if l == nil {
		return fmt.Errorf("list: nil list")
	}
	r := l.lazyInit()
	if r.size < 0 {
		return fmt.Errorf("list: negative size %d", r.size)
	}
	s := &r.sentinel
	n, steps := s.next, 0
	for ; n != s; n = n.next {
		if n == nil {
			return fmt.Errorf("list: broken next link after %d nodes", steps)
		}
		if n.next == nil || n.next.prev != n {
			return fmt.Errorf("list: next/prev mismatch at node %d", steps)
		}
		steps++
		if steps > r.size {
			return fmt.Errorf("list: forward walk exceeds size %d", r.size)
		}
	}
	if steps != r.size {
		return fmt.Errorf("list: forward walk visits %d nodes, size is %d", steps, r.size)
	}
	if s.next.prev != s {
		return fmt.Errorf("list: first node does not link back to sentinel")
	}
	n, steps = s.prev, 0
	for ; n != s; n = n.prev {
		if n == nil {
			return fmt.Errorf("list: broken prev link after %d nodes", steps)
		}
		steps++
		if steps > r.size {
			return fmt.Errorf("list: backward walk exceeds size %d", r.size)
		}
	}
	if steps != r.size {
		return fmt.Errorf("list: backward walk visits %d nodes, size is %d", steps, r.size)
	}
	return nil
}
