// Package query evaluates composable include/exclude condition lists
// over the library.
//
// A condition is a (kind, operand) pair; the operand is free text from
// the search editor. The engine is total over all operand strings:
// empty operands are vacuously true, malformed numeric operands simply
// match nothing, and unknown kinds are ignored. No query input can make
// Evaluate fail.
//
// Include conditions AND together, exclude conditions OR together and
// negate, and result order follows store order.
package query
