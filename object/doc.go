/*
Package object implements the generic configuration tree and its sync
engine.

A Tree is an arena of nodes addressed by opaque handles. Each node holds
one configuration object: its kind schema, its identity name (entries) or
none (singletons), a validated attribute set, owned handles to its
children and a non-owning handle back to its parent. Deleting a node
invalidates its handle; a stale handle fails every subsequent operation.

Absolute XPaths are derived from tree position: the owning device resolves
the fixed root-scope prefix and each ancestor contributes its container
segment, root to leaf. Sync operations (create, apply, delete, refresh)
compute the node's XPath, serialize attributes through the codec package
and invoke the bound transport. Remote errors surface verbatim and are
never retried.

A Tree is not safe for concurrent use.
*/
package object
