//go:build unit || e2e

package testutil

// a helper function for dynamically modifying map fields in tests
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// StationField applies Field to one entry of the "stations" array.
func StationField(index int, key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		stations, ok := m["stations"].([]any)
		if !ok || index < 0 || index >= len(stations) {
			return
		}
		if entry, ok := stations[index].(map[string]any); ok {
			Field(key, value)(entry)
		}
	}
}
