// Package objects declares kind schemas for shared policy objects:
// address objects and administrative tags. Each schema is registered at
// init time and attached to a device tree through the object package.
package objects
