// Package combiners holds ready made operators for tables.
package combiners

import (
	"fmt"
	"strings"
)

// StringAdder joins both operands with a space.
func StringAdder(a, b string) string {
	return a + " " + b
}

func IntegerAdder(a, b int) int {
	return a + b
}

func IntegerTimer(a, b int) int {
	return a * b
}

// StringTimer repeats s n times. Non positive n gives an empty string.
func StringTimer(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}

// SubstringCounter counts occurrences of sub in s, overlapping ones included.
func SubstringCounter(s, sub string) int {
	count := 0
	for i := 0; i < len(s); i++ {
		if strings.HasPrefix(s[i:], sub) {
			count++
		}
	}
	return count
}

type Color struct {
	R, G, B uint8
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ColorRG takes green from the row and red from the column.
func ColorRG(row, col int) Color {
	return Color{R: channel(col), G: channel(row)}
}

// ColorRB takes blue from the row and red from the column.
func ColorRB(row, col int) Color {
	return Color{R: channel(col), B: channel(row)}
}

// ColorGB takes blue from the row and green from the column.
func ColorGB(row, col int) Color {
	return Color{G: channel(col), B: channel(row)}
}

func channel(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}
