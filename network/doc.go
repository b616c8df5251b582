// Package network declares kind schemas for networking configuration:
// ethernet interfaces, security zones and virtual routers. Interfaces and
// virtual routers live in the device scope; zones are per-vsys.
package network
