/*
Package device implements concrete device roots for configuration trees.

A Firewall owns a tree rooted at one PAN-OS firewall and resolves the
fixed XPath prefix for each configuration partition, including the vsys
the firewall is pinned to. A Panorama does the same for a Panorama
management server, adding the shared and per-template partitions and
request proxying to managed firewalls by serial number.
*/
package device
