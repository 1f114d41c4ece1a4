package sqlite

import (
	"encoding/json"
	"log/slog"
)

// decodeJSONMap parses a JSON object column. An unparseable value degrades
// to an empty map with a loud warning rather than failing the caller; the
// degrade is confined to the one row, so other tenants are unaffected.
func decodeJSONMap(logger *slog.Logger, tenantID, column, raw string) map[string]any {
	if raw == "" {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		if logger != nil {
			logger.Warn("corrupt persisted record, treating as empty",
				"tenant_id", tenantID, "column", column, "bytes", len(raw), "error", err)
		}
		return map[string]any{}
	}
	if m == nil {
		return map[string]any{}
	}
	return m
}

func encodeJSONMap(m map[string]any) (string, error) {
	if m == nil {
		m = map[string]any{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
