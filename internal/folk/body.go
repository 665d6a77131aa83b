package folk

import "fmt"

// PickFields assembles a request body from caller-supplied arguments. A key
// is copied iff the caller actually provided it, so falsy values like "" or
// false survive while absent keys stay absent and the upstream treats them
// as "do not change". An explicit JSON null is forwarded as null.
func PickFields(args map[string]any, keys ...string) map[string]any {
	body := make(map[string]any, len(keys))
	for _, key := range keys {
		if value, ok := args[key]; ok {
			body[key] = value
		}
	}
	return body
}

// GroupRefs converts a caller-supplied list of plain group IDs into the
// [{id: ...}] records the folk API expects on person and company payloads.
func GroupRefs(v any) []map[string]any {
	ids, ok := v.([]any)
	if !ok {
		return nil
	}
	refs := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, map[string]any{"id": fmt.Sprintf("%v", id)})
	}
	return refs
}
