package formatter

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// secretPrefix marks keys whose values are credentials.
const secretPrefix = "ai.api_keys."

// FormatConfig renders every setting as a dotted key table. Credentials are
// masked.
func FormatConfig(path string, settings map[string]any) string {
	flat := map[string]string{}
	flattenSettings("", settings, flat)

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		v := flat[k]
		if strings.HasPrefix(k, secretPrefix) {
			v = MaskSecret(v)
		}
		rows = append(rows, []string{StyleGreen.Render(k), v})
	}
	body := RenderTable([]string{"键", "值"}, rows) + "\n" + Dim("配置文件: "+path)
	return RenderBox("配置", body)
}

func flattenSettings(prefix string, m map[string]any, out map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenSettings(key, nested, out)
			continue
		}
		out[key] = fmt.Sprint(v)
	}
}

// MaskSecret keeps the first three and last four characters of long values.
func MaskSecret(s string) string {
	if utf8.RuneCountInString(s) <= 8 {
		return "****"
	}
	r := []rune(s)
	return string(r[:3]) + "****" + string(r[len(r)-4:])
}
