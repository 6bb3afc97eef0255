package extract

import (
	"strings"

	"github.com/leofalp/jsonshape/core/jsonvalue"
)

// synthesize assembles a description from a script document: the spoken hook
// followed by each scene's narration, in order. A narration that repeats and
// extends the previous part replaces it.
func synthesize(doc jsonvalue.Value, maxDepth int) (string, bool) {
	var parts []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if n := len(parts); n > 0 {
			last := parts[n-1]
			if s == last || strings.HasPrefix(last, s) {
				return
			}
			if strings.HasPrefix(s, last) {
				parts[n-1] = s
				return
			}
		}
		parts = append(parts, s)
	}

	hooks := Query{Tiers: [][]string{HookKeys}, MaxDepth: maxDepth, Accept: isText}
	if hook, ok := hooks.Find(doc); ok {
		s, _ := hook.Str()
		add(s)
	}

	scenes := Query{Tiers: [][]string{SceneKeys}, MaxDepth: maxDepth, Accept: isArray}
	if list, ok := scenes.Find(doc); ok {
		for _, scene := range list.Items() {
			for _, key := range NarrationKeys {
				if v, ok := scene.Get(key); ok && isText(v) {
					s, _ := v.Str()
					add(s)
					break
				}
			}
		}
	}

	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}

func isText(v jsonvalue.Value) bool {
	s, ok := v.Str()
	return ok && strings.TrimSpace(s) != "" && !isEncodedDocument(strings.TrimSpace(s))
}

func isArray(v jsonvalue.Value) bool {
	return v.Kind() == jsonvalue.Array
}
