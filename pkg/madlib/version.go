// Package madlib holds project-wide metadata.
package madlib

// Version is the current madlib release.
const Version = "v0.1.0"
