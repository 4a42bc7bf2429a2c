// Package domain contains the entities of the divination engine: cast
// lines, hexagram reference records, safety verdicts, composed
// interpretations and the Reading record handed to persistence. It has no
// knowledge of transport or storage.
package domain
