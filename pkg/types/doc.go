// Package types defines the value types shared across nxj: the dependency
// records supplied by the host build, the linker byte-order flag and the
// upload transport kinds.
package types
