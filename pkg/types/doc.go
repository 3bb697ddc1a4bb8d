// Package types defines the entity types, configuration, and standard errors
// shared by the colorcompare packages: color entries, grouped entries, filter
// snapshots, aligned rows, and the display records handed to renderers.
package types
