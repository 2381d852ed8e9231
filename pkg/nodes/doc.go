/*
Package nodes ships the built-in graph node kinds.

The arithmetic nodes (Add, Sub, Mul, Div) combine two upstream expressions
into one. AttributeNode and TimeNode are sources: they take no inputs and
surface attribute reads and the simulation clock. NormalizeNode rescales a
vector expression to unit length.

All of them are thin clients of the expr.Builder boundary: evaluation
records the shape of the computation and returns opaque handles, it never
computes values. Every kind validates its input arity and reports
violations as errors wrapping expr.ErrEval.
*/
package nodes
