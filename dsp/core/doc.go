// Package core holds small numeric and buffer helpers shared by the
// filter, equalizer and measurement packages.
package core
