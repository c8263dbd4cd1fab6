// Package testutil defines support code for unit tests.
package testutil

import (
	"fmt"
	"math/rand/v2"

	"github.com/creachadair/jparse"
)

// FromAny converts a value of the form produced by decoding JSON into an
// any with encoding/json, into the equivalent jparse.Value.
func FromAny(v any) jparse.Value {
	switch t := v.(type) {
	case nil:
		return jparse.Null{}
	case bool:
		return jparse.Bool(t)
	case float64:
		return jparse.Number(t)
	case string:
		return jparse.String(t)
	case []any:
		arr := make(jparse.Array, len(t))
		for i, elt := range t {
			arr[i] = FromAny(elt)
		}
		return arr
	case map[string]any:
		obj := make(jparse.Object, len(t))
		for key, elt := range t {
			obj[key] = FromAny(elt)
		}
		return obj
	default:
		panic(fmt.Sprintf("unexpected type %T", v))
	}
}

// runes are the candidates for string contents, chosen to exercise escapes,
// multi-byte encodings, and surrogate pairs.
var runes = []rune("abcXYZ019 _-\"\\/\b\f\n\r\t\x00\x1f<>&\u00e9\u4e2d\u2028\U0001f600")

// RandomValue returns a pseudo-random JSON value in the form accepted by
// encoding/json.Marshal, with arrays and objects nested no more than depth
// levels.
func RandomValue(rng *rand.Rand, depth int) any {
	n := 4
	if depth > 0 {
		n = 6
	}
	switch rng.IntN(n) {
	case 0:
		return nil
	case 1:
		return rng.IntN(2) == 0
	case 2:
		switch rng.IntN(3) {
		case 0:
			return float64(rng.IntN(2000) - 1000)
		case 1:
			return rng.NormFloat64() * 1e6
		default:
			return rng.Float64() * 1e-5
		}
	case 3:
		return randomString(rng)
	case 4:
		arr := make([]any, rng.IntN(6))
		for i := range arr {
			arr[i] = RandomValue(rng, depth-1)
		}
		return arr
	default:
		obj := make(map[string]any)
		for range rng.IntN(6) {
			obj[randomString(rng)] = RandomValue(rng, depth-1)
		}
		return obj
	}
}

func randomString(rng *rand.Rand) string {
	rs := make([]rune, rng.IntN(12))
	for i := range rs {
		rs[i] = runes[rng.IntN(len(runes))]
	}
	return string(rs)
}
