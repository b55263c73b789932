//+build gofuzz

package ninep

import "bytes"

// Automated fuzz testing

func Fuzz(data []byte) int {
	p := NewParser(DefaultMaxSize, Version)
	d := NewDecoder(bytes.NewReader(data), p)
	interesting := 0
	for d.Next() {
		if _, err := d.Request(); err == nil {
			interesting = 1
		}
		if _, err := d.Response(); err == nil {
			interesting = 1
		}
	}
	return interesting
}
