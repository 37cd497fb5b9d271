// Package conv provides the type coercion helpers the node factory needs
// when reading YAML/JSON config maps, where numbers arrive as whatever the
// decoder picked.
package conv

// ToFloat64 converts a decoded config value to float64.
// Accepts float64, float32 and the int family; bool maps to 1/0.
func ToFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case int32:
		return float64(val), true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// ToInt converts a decoded config value to int.
func ToInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case int32:
		return int(val), true
	case float64:
		return int(val), true
	case float32:
		return int(val), true
	default:
		return 0, false
	}
}

// ConfigGet reads a typed value from a config map, with a default.
func ConfigGet[T any](config map[string]any, key string, def T) T {
	if v, ok := config[key]; ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return def
}

// ConfigGetInt reads an int from a config map regardless of the decoder's
// numeric type, with a default.
func ConfigGetInt(config map[string]any, key string, def int) int {
	if v, ok := config[key]; ok {
		if i, ok := ToInt(v); ok {
			return i
		}
	}
	return def
}

// ConfigGetFloat reads a float64 from a config map regardless of the
// decoder's numeric type, with a default.
func ConfigGetFloat(config map[string]any, key string, def float64) float64 {
	if v, ok := config[key]; ok {
		if f, ok := ToFloat64(v); ok {
			return f
		}
	}
	return def
}

// MapToFloat64 converts a decoded map's values to float64, dropping
// entries that cannot be coerced.
func MapToFloat64(in map[string]any) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		if f, ok := ToFloat64(v); ok {
			out[k] = f
		}
	}
	return out
}
