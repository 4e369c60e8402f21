package internal

import (
	"iter"
)

// IterSeq2Concat chains key/value iterators, in order.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}

// IterSeq2Prefix prepends prefix to every key of an iterator.
func IterSeq2Prefix[V any](prefix string, seq iter.Seq2[string, V]) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for key, value := range seq {
			if !yield(prefix+key, value) {
				return
			}
		}
	}
}
