// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kick Presence contributors

package config

// Document is the settings tree held by a Store. Nested mappings are
// map[string]any; leaves are string, bool, int, float64, nil or []any, plus json.Number
// for integers that do not fit in int.
type Document map[string]any

// Defaults returns a freshly allocated copy of the default schema.
func Defaults() Document {
	return Document{
		"kick": map[string]any{
			"username":             "",
			"check_interval":       30, // seconds
			"enable_notifications": true,
		},
		"discord": map[string]any{
			"client_id":            "",
			"enable_rich_presence": true,
		},
		"gui": map[string]any{
			"theme":            "dark",
			"start_minimized":  false,
			"minimize_to_tray": true,
		},
		"logging": map[string]any{
			"level": "INFO",
			"file":  nil,
		},
	}
}

// mergeDefaults backfills doc from defaults one level deep: a missing section
// is inserted whole, a missing field of a mapping section gets its default.
// Sections that are present but not mappings are left alone.
func mergeDefaults(doc, defaults Document) {
	for section, def := range defaults {
		current, ok := doc[section]
		if !ok {
			doc[section] = def
			continue
		}

		currentFields, ok := asMap(current)
		if !ok {
			continue
		}
		defaultFields, ok := asMap(def)
		if !ok {
			continue
		}
		for field, value := range defaultFields {
			if _, ok := currentFields[field]; !ok {
				currentFields[field] = value
			}
		}
	}
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, m != nil
	case Document:
		return m, m != nil
	default:
		return nil, false
	}
}

// cloneValue deep-copies mappings and slices so callers never share them with
// the store.
func cloneValue(v any) any {
	if m, ok := asMap(v); ok {
		out := make(map[string]any, len(m))
		for k, child := range m {
			out[k] = cloneValue(child)
		}
		return out
	}
	if s, ok := v.([]any); ok {
		out := make([]any, len(s))
		for i, child := range s {
			out[i] = cloneValue(child)
		}
		return out
	}
	return v
}
