// Package cast simulates the three-coin method that produces the lines of
// a hexagram. Each call to Generate is an independent round of three fair
// coin tosses; Cast repeats it for positions one through six.
package cast
