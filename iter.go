package pace

import "iter"

// All returns an iterator over items that drives a progress bar as a side
// effect. The bar's total is the element count, it advances once per
// consumed element, and it finishes when iteration stops, including early
// break.
//
//	for _, f := range pace.All(files) {
//	    process(f)
//	}
//
// The advance happens after the loop body returns, so the bar counts
// completed work: a fully consumed sequence ends with current == total.
func All[S ~[]E, E any](items S, opts ...Option) iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		bar := New(uint64(len(items)), opts...)
		defer bar.Close()

		for i, item := range items {
			if !yield(i, item) {
				return
			}
			bar.Inc()
		}
	}
}

// N returns an iterator over 0..n-1 driving a progress bar, for loops that
// have a count but no collection:
//
//	for i := range pace.N(epochs) {
//	    train(i)
//	}
func N(n int, opts ...Option) iter.Seq[int] {
	return func(yield func(int) bool) {
		total := n
		if total < 0 {
			total = 0
		}
		bar := New(uint64(total), opts...)
		defer bar.Close()

		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
			bar.Inc()
		}
	}
}

// Seq wraps an arbitrary sequence with a progress bar. The total must be
// supplied because a sequence does not know its length; pass 0 when it is
// unknown and the bar will report counts without a percentage.
func Seq[V any](seq iter.Seq[V], total uint64, opts ...Option) iter.Seq[V] {
	return func(yield func(V) bool) {
		bar := New(total, opts...)
		defer bar.Close()

		for v := range seq {
			if !yield(v) {
				return
			}
			bar.Inc()
		}
	}
}
