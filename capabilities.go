package shellbridge

// BrowserName is the browser name that marks a capability entry as a
// desktop-shell target.
const BrowserName = "electron"

// ChromeOptionsKey is the vendor-prefixed capability key that carries
// browser-engine launch options.
const ChromeOptionsKey = "goog:chromeOptions"

// IsShellEntry reports whether a single capability record targets the
// desktop shell. Matching is exact on the browserName value.
func IsShellEntry(entry map[string]interface{}) bool {
	name, ok := entry["browserName"].(string)
	return ok && name == BrowserName
}

// ForEachShellEntry walks a capability object in any of the three shapes
// a runner configuration uses and invokes fn on every desktop-shell
// entry, in place:
//
//   - flat: the object itself is one capability record
//   - W3C: {"alwaysMatch": {...}, "firstMatch": [{...}, ...]}
//   - multiremote: {"<name>": {"capabilities": {...}}, ...}
//
// Shape detection keys on structure. An object carrying alwaysMatch or
// firstMatch is W3C; an object whose values are maps wrapping a
// "capabilities" key is multiremote; anything else is flat. Non-shell
// entries and values of unexpected types are left untouched.
func ForEachShellEntry(caps map[string]interface{}, fn func(entry map[string]interface{})) {
	if caps == nil {
		return
	}

	if isW3C(caps) {
		if always, ok := caps["alwaysMatch"].(map[string]interface{}); ok && IsShellEntry(always) {
			fn(always)
		}
		if first, ok := caps["firstMatch"].([]interface{}); ok {
			for _, raw := range first {
				if entry, ok := raw.(map[string]interface{}); ok && IsShellEntry(entry) {
					fn(entry)
				}
			}
		}
		return
	}

	if isMultiremote(caps) {
		for _, raw := range caps {
			wrapper, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			inner, ok := wrapper["capabilities"].(map[string]interface{})
			if !ok {
				continue
			}
			// A multiremote instance may itself hold a W3C object.
			ForEachShellEntry(inner, fn)
		}
		return
	}

	if IsShellEntry(caps) {
		fn(caps)
	}
}

func isW3C(caps map[string]interface{}) bool {
	if _, ok := caps["alwaysMatch"]; ok {
		return true
	}
	_, ok := caps["firstMatch"]
	return ok
}

// isMultiremote reports whether every value is a map wrapping a
// "capabilities" key. An empty object is not multiremote.
func isMultiremote(caps map[string]interface{}) bool {
	if len(caps) == 0 {
		return false
	}
	for _, raw := range caps {
		wrapper, ok := raw.(map[string]interface{})
		if !ok {
			return false
		}
		if _, ok := wrapper["capabilities"]; !ok {
			return false
		}
	}
	return true
}
