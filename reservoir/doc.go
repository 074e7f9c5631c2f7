// Package reservoir implements an online, fixed-capacity reservoir
// sampler over batches of equal-shaped opaque byte rows.
//
// The sampler maintains a uniformly random sample of at most Capacity
// rows out of everything it has seen, using Vitter's Algorithm R in a
// single pass: the first Capacity rows are kept, after which row n
// replaces a random slot with probability Capacity/n. Rows may carry
// 64-bit external keys; a key already represented in the reservoir
// causes later rows with the same key to be skipped entirely, so
// duplicates influence neither the sample nor the replacement
// probability.
//
// State is owned by the caller and threaded through every Process call,
// accumulating across an arbitrarily long stream of batches:
//
//	cfg := reservoir.Config{Capacity: 1000, KeyTracking: true}
//	st, _ := reservoir.NewState(cfg)
//	p, _ := reservoir.NewSampler(cfg)
//	for batch := range stream {
//		if err := p.Process(batch, st); err != nil {
//			return err
//		}
//	}
//
// Row payloads are copied verbatim as fixed-stride byte blocks; their
// internal structure is irrelevant to the sampler. A Sampler and its
// State are not safe for concurrent use.
package reservoir
