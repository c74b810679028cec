// Package input loads puzzle fixtures from disk.
//
// Fixtures live under a fixed directory convention:
//
//	<dir>/<day>/<part>.txt           real puzzle input
//	<dir>/<day>/<part>_example.txt   worked example
//
// Files are read whole, split into trimmed non-empty lines and returned in
// order. A fixture that cannot be read is a setup error; callers are
// expected to abort the run rather than recover.
package input
