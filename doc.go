/*
Package panconf is a client-side model of a PAN-OS device's hierarchical
configuration store, managed over the XML/XPath management API.

Callers build a typed object tree in local memory mirroring the device
configuration (system settings, virtual systems, network, policy objects)
and synchronize it against the live device: pushing local changes with
create, apply and delete, and pulling live state with refresh. XPath
addresses and XML fragments are derived from the tree, never hand-written.

The object sub-directory holds the generic tree and sync engine, schema the
declarative attribute-to-XML mapping, codec the XML fragment serializer,
xapi the XML API transport, and device the Firewall and Panorama tree roots.

A tree is not safe for concurrent mutation. A caller synchronizing many
nodes issues sequential operations, or parallelizes explicitly across
independent transport sessions.
*/
package panconf
