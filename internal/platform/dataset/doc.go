// Package dataset loads the static hexagram reference data from YAML.
//
// The bundled dataset is embedded in the binary; an operator may point the
// service at another file with the same layout. A loaded Dataset is never
// modified and can be shared freely between goroutines.
package dataset
