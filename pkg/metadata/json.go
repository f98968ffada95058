package metadata

// AddToObject projects m onto dst per the wire format in spec.md §6.1:
// properties become sibling string fields, unkeyed tags form a "tags"
// array (omitted if empty), and keyed tags form a "keytags" object whose
// values collapse to a single string when the set has exactly one member.
func (m *Metadata) AddToObject(dst map[string]any) {
	if m == nil {
		return
	}
	for _, k := range m.PropertyKeys() {
		if v, ok := m.properties.Get(k); ok {
			dst[k] = v
		}
	}

	if s, ok := m.TryGetTags(UnkeyedTagKey); ok {
		dst["tags"] = s.Slice()
	}

	keyTags := map[string]any{}
	for _, k := range m.TagKeys() {
		if k == UnkeyedTagKey {
			continue
		}
		s, ok := m.TryGetTags(k)
		if !ok {
			continue
		}
		vals := s.Slice()
		if len(vals) == 1 {
			keyTags[k] = vals[0]
		} else {
			keyTags[k] = vals
		}
	}
	if len(keyTags) > 0 {
		dst["keytags"] = keyTags
	}
}

// FillFromObject populates m from a decoded JSON object, skipping keys
// named in reserved (the field names the caller treats specially, e.g.
// "key"/"targets" on a node object or "nodes" on the graph object).
// Non-string scalar property values and malformed tag entries are silently
// dropped rather than failing the whole load (spec.md §4.1, §7).
func (m *Metadata) FillFromObject(src map[string]any, reserved map[string]bool) {
	m.ensure()
	for k, v := range src {
		if reserved[k] {
			continue
		}
		if sv, ok := v.(string); ok {
			m.SetProperty(k, &sv)
		}
	}

	if raw, ok := src["tags"]; ok {
		if arr, ok := raw.([]any); ok {
			for _, item := range arr {
				if sv, ok := item.(string); ok {
					m.Tags(UnkeyedTagKey).Add(sv)
				}
			}
		}
	}

	if raw, ok := src["keytags"]; ok {
		if obj, ok := raw.(map[string]any); ok {
			for k, v := range obj {
				switch vv := v.(type) {
				case string:
					m.Tags(k).Add(vv)
				case []any:
					for _, item := range vv {
						if sv, ok := item.(string); ok {
							m.Tags(k).Add(sv)
						}
					}
				}
			}
		}
	}
}
