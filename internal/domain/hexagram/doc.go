// Package hexagram resolves six cast lines into a hexagram reference record.
//
// Lines are read as a six-bit number, bottom line first and yang as 1; the
// hexagram number is that value plus one. This is a raw binary ordering,
// not the traditional King Wen sequence. Changing lines are turned by
// Transform to obtain the resulting hexagram.
package hexagram
