// Package entropy provides the xoshiro256** pseudo-random source that feeds
// identifier generation.
//
// A [Source] is deliberately unsynchronized and cheap to advance; callers
// that share one across goroutines wrap it with [NewLocked]. Sources satisfy
// the math/rand/v2 Source interface, so they compose with the standard
// library's rand.New as well.
//
// [New] seeds from the operating system. [NewSeeded] expands a caller-chosen
// 64-bit seed through SplitMix64, which makes sequences reproducible for
// tests and backfill tooling. An all-zero internal state would lock
// xoshiro256** at zero forever, so both constructors guarantee a non-zero
// state.
package entropy
