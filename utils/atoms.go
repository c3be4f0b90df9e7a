package utils

import "github.com/spf13/cast"

// Int will return any number or numeric string as an int.
func Int(atom any) int64 {
	return cast.ToInt64(atom)
}

// Float will return any number or numeric string as a float.
func Float(atom any) float64 {
	return cast.ToFloat64(atom)
}

// String will return any atom as a string.
func String(atom any) string {
	return cast.ToString(atom)
}

// Floats will return the atoms starting at the offset as floats. Missing atoms
// are returned as zero.
func Floats(atoms []any, offset, n int) []float64 {
	list := make([]float64, n)
	for i := range list {
		if offset+i < len(atoms) {
			list[i] = Float(atoms[offset+i])
		}
	}

	return list
}
