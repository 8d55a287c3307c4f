// Package ladder is the convenience layer over mixed-length vocabularies:
// it splits a raw word list into per-length buckets, builds one neighbour
// graph per bucket, and routes each query to the bucket matching the query
// words' length.
//
// What
//
//   - New([]string) partitions by length, validates each bucket through
//     wordset.New, and builds every bucket's adjacency eagerly.
//   - Query(start, end) delegates to chains.Find within the right bucket.
//     A cross-length pair, or a length with no bucket, is unsatisfiable by
//     definition and yields the empty WordChain — never an error.
//   - FromFile(path) reads a one-word-per-line text file (whitespace
//     trimmed, blanks skipped) and hands the list to New.
//   - Lengths and Graph expose the partition for inspection.
//
// Why
//
//   - Words of different lengths can never be neighbours, so a mixed
//     dictionary decomposes into fully independent graphs; partitioning
//     once up front keeps each query's search space to a single length.
//
// Concurrency
//
//	Construction is synchronous and single-threaded. Once New returns, the
//	index is read-only: buckets share no state, so callers may issue
//	queries against distinct buckets from separate goroutines without
//	synchronization. The package itself starts no goroutines.
//
// Errors
//
//   - wordset.ErrEmptyInput      if the word list (or file) has no entries.
//   - wordset.ErrNonAlphabetic   if any word strays outside a–z.
//   - Wrapped *os.PathError / scanner errors from FromFile.
//
// wordset.ErrLengthMismatch cannot occur through New: bucketing guarantees
// uniform length per bucket.
package ladder
