package dsl

import "errors"

// ErrDuplicateNode is returned when two nodes are registered under the same name.
var ErrDuplicateNode = errors.New("duplicate node name")

// ErrUnknownNode is returned when a connection references a name that was never registered.
var ErrUnknownNode = errors.New("unknown node")

// ErrUnknownSlot is returned when a connection references a slot the node does not declare.
var ErrUnknownSlot = errors.New("unknown slot")

// ErrBadSlotRef is returned when a slot reference is not of the form "node.slot".
var ErrBadSlotRef = errors.New("malformed slot reference")
