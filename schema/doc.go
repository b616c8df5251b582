/*
Package schema declares the static typing layer for configuration
objects: value kinds, field declarations, per-kind specs and validated
attribute sets.

A Spec is declared once per object kind as a package-level var,
registered by kind name, and never mutated. It pins down everything the
generic tree and codec need: the kind's container path, whether entries
are named, which partition its XPath anchors to, the ordered field list
and the set of permitted child kinds.

Values enforces the spec at the boundary: attribute names outside the
schema and values of the wrong kind are rejected at the call, never
stored and discovered later.
*/
package schema
