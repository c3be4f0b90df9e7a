// Package curve provides the easing functions used to shape interpolations.
package curve

import "strings"

// Func is an easing function in the classic form where t is the current time,
// b the begin value, c the total change and d the duration.
type Func func(t, b, c, d float64) float64

// Kind enumerates the available easing functions.
type Kind int

// The available easing functions.
const (
	Linear Kind = iota

	InQuad
	OutQuad
	InOutQuad

	InCubic
	OutCubic
	InOutCubic

	InQuart
	OutQuart
	InOutQuart

	InQuint
	OutQuint
	InOutQuint

	InSine
	OutSine
	InOutSine

	InExpo
	OutExpo
	InOutExpo

	InCirc
	OutCirc
	InOutCirc

	InElastic
	OutElastic
	InOutElastic

	InBack
	OutBack
	InOutBack

	InBounce
	OutBounce
	InOutBounce

	numKinds
)

var names = [numKinds]string{
	"linear",
	"inQuad", "outQuad", "inOutQuad",
	"inCubic", "outCubic", "inOutCubic",
	"inQuart", "outQuart", "inOutQuart",
	"inQuint", "outQuint", "inOutQuint",
	"inSine", "outSine", "inOutSine",
	"inExpo", "outExpo", "inOutExpo",
	"inCirc", "outCirc", "inOutCirc",
	"inElastic", "outElastic", "inOutElastic",
	"inBack", "outBack", "inOutBack",
	"inBounce", "outBounce", "inOutBounce",
}

var funcs = [numKinds]Func{
	LinearFunc,
	InQuadFunc, OutQuadFunc, InOutQuadFunc,
	InCubicFunc, OutCubicFunc, InOutCubicFunc,
	InQuartFunc, OutQuartFunc, InOutQuartFunc,
	InQuintFunc, OutQuintFunc, InOutQuintFunc,
	InSineFunc, OutSineFunc, InOutSineFunc,
	InExpoFunc, OutExpoFunc, InOutExpoFunc,
	InCircFunc, OutCircFunc, InOutCircFunc,
	InElasticFunc, OutElasticFunc, InOutElasticFunc,
	InBackFunc, OutBackFunc, InOutBackFunc,
	InBounceFunc, OutBounceFunc, InOutBounceFunc,
}

var lookup = func() map[string]Kind {
	m := make(map[string]Kind, numKinds)
	for i, name := range names {
		m[normalize(name)] = Kind(i)
	}
	return m
}()

// Valid returns whether the kind is a known easing function.
func (k Kind) Valid() bool {
	return k >= 0 && k < numKinds
}

// String returns the name of the kind. Unknown kinds are reported as linear.
func (k Kind) String() string {
	if !k.Valid() {
		return names[Linear]
	}
	return names[k]
}

// Kinds returns all known kinds in declaration order.
func Kinds() []Kind {
	list := make([]Kind, 0, numKinds)
	for k := Linear; k < numKinds; k++ {
		list = append(list, k)
	}
	return list
}

// Resolve will return the easing function for the provided kind. Unknown
// kinds resolve to the linear function.
func Resolve(k Kind) Func {
	if !k.Valid() {
		return LinearFunc
	}
	return funcs[k]
}

// Lookup will return the kind with the provided name. The name is matched
// case-insensitively and dashes, underscores and spaces are ignored.
func Lookup(name string) (Kind, bool) {
	k, ok := lookup[normalize(name)]
	return k, ok
}

// Parse will return the kind with the provided name or linear if the name is
// not known.
func Parse(name string) Kind {
	k, ok := Lookup(name)
	if !ok {
		return Linear
	}
	return k
}

// Shape will evaluate the kind for a normalized progress in the range [0, 1].
func Shape(k Kind, progress float64) float64 {
	return Resolve(k)(progress, 0, 1, 1)
}

func normalize(name string) string {
	name = strings.ToLower(name)
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
}
