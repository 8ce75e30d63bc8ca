// Package scenario evaluates and compares transport-network scenarios.
//
// A Scenario is a named Network. Compare evaluates a baseline and an
// alternative — identical nodes and demands, different link sets — and
// reports the vehicle-kilometres saved by the alternative. The two solves
// are independent; WithParallel() runs them on a small worker pool, which
// changes nothing about the result.
//
// The package also ships the seeded strait study the repository exists
// for: a seven-node corridor split by a strait, where all traffic between
// the two shores drives the long way around via node 4. Strait() is the
// road-only baseline; StraitFerry() adds a zero-kilometre ferry between
// nodes 2 and 6, capped at 2000 trips per direction. The baseline totals
// 399,250 vehicle-km; the ferry brings it down to 280,770, a saving of
// 118,480 km (29.68%).
//
// Failure behavior: if either evaluation fails, Compare returns the error
// and no Comparison — a partial or misleading saving is never reported.
package scenario
