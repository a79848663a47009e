// FILE: lixenwraith/optconfig/decode.go
package optconfig

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/samber/oops"
)

// decodeValue converts a raw store value into T using weak typing plus the git
// conversion hooks. It is the single conversion path for typed store reads.
func decodeValue[T any](raw any) (T, error) {
	var out T
	if raw == nil {
		return out, fmt.Errorf("value is nil, cannot convert to %T", out)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		DecodeHook:       storeDecodeHook(),
	})
	if err != nil {
		return out, oops.Wrapf(err, "decoder creation failed")
	}

	if err := decoder.Decode(raw); err != nil {
		return out, err
	}
	return out, nil
}

// storeDecodeHook returns the composite decode hook for store value conversions
func storeDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		stringToGitBoolHookFunc(),
		stringToGitIntHookFunc(),
		floatToIntegralHookFunc(),
	)
}

// stringToGitBoolHookFunc accepts the boolean spellings git understands
func stringToGitBoolHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}

		switch strings.ToLower(strings.TrimSpace(reflect.ValueOf(data).String())) {
		case "true", "yes", "on", "1":
			return true, nil
		case "false", "no", "off", "0", "":
			return false, nil
		}
		// Let weak decoding have the last word (e.g. "t", "F")
		return data, nil
	}
}

// stringToGitIntHookFunc parses integers with git's k/m/g unit suffixes
func stringToGitIntHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Int64 {
			return data, nil
		}

		s := strings.TrimSpace(reflect.ValueOf(data).String())
		if s == "" {
			return nil, fmt.Errorf("empty string is not an integer")
		}

		multiplier := int64(1)
		switch s[len(s)-1] {
		case 'k', 'K':
			multiplier = 1 << 10
		case 'm', 'M':
			multiplier = 1 << 20
		case 'g', 'G':
			multiplier = 1 << 30
		}
		if multiplier != 1 {
			s = s[:len(s)-1]
		}

		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			// Integral decimals such as "8.0" (JSON numbers arrive as text)
			f, ferr := strconv.ParseFloat(s, 64)
			if ferr != nil || f != math.Trunc(f) || f > math.MaxInt64 || f < math.MinInt64 {
				return nil, fmt.Errorf("invalid integer %q: %w", data, err)
			}
			n = int64(f)
		}
		if n > math.MaxInt64/multiplier || n < math.MinInt64/multiplier {
			return nil, fmt.Errorf("integer %q overflows int64", data)
		}
		return n * multiplier, nil
	}
}

// floatToIntegralHookFunc rejects fractional floats instead of truncating them
func floatToIntegralHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if (f.Kind() != reflect.Float64 && f.Kind() != reflect.Float32) || t.Kind() != reflect.Int64 {
			return data, nil
		}

		v := reflect.ValueOf(data).Float()
		if v != math.Trunc(v) || v > math.MaxInt64 || v < math.MinInt64 {
			return nil, fmt.Errorf("float %v is not an integer", v)
		}
		return int64(v), nil
	}
}
