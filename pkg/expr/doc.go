/*
Package expr defines the boundary between the graph model and an expression
backend.

The graph core never evaluates anything itself. When a node is evaluated it
records the shape of its computation through a Builder and receives opaque
Handles in return; a backend (shader lowering, interpreter, code generator)
owns the recorded expressions and their meaning. This package carries only
what both sides must agree on:

  - Handle, the opaque reference a Builder mints for each recorded operation.
  - Builder, the operations a node may record (literals, binary arithmetic,
    attribute reads, built-in values, normalization).
  - The attribute and built-in vocabulary used as slot metadata, typed with
    cty types.
  - ErrEval, the sentinel wrapped by every recoverable evaluation failure.

The memory subpackage provides an in-memory Builder for tests and examples.
*/
package expr
