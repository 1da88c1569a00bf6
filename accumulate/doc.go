/*
Package accumulate defines how values are folded into aggregates.

An Accumulator turns a single value into an aggregate (Compute), combines two
aggregates (Combine) and names the neutral aggregate (Neutral). Accumulate
folds one more value into an aggregate and serves streaming callers (see
Fold); range structures like rmq.Rmq use Compute and Combine only.

For aggregates a, b, c and every value v an accumulator must satisfy

	Combine(Combine(a, b), c) == Combine(a, Combine(b, c))
	Combine(Neutral(), a) == a == Combine(a, Neutral())
	Accumulate(Neutral(), v) == Compute(v)

Commutativity is not required. Accumulators violating these laws produce
unspecified (but deterministic) results when used for range folds.

Simple, Min and Max wrap an arbitrary binary function and use Option as the
aggregate, with None as the neutral element. Sum and DecimalSum use the
natural zero of their number type.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package accumulate
