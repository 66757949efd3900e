package normalizer

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Fallback keys checked, in order, when the canonical "Skills" key is
// absent.
var skillKeys = []string{
	"skills", "skillset", "technical_skills",
	"professional_skills", "core_competencies",
}

// ExtractSkills derives a flat skill list from a parsed-resume blob. The
// source value may be a comma/semicolon-separated string, an array of
// strings, or an array of objects carrying a name/value/skill field.
func ExtractSkills(data []byte) []string {
	skills := []string{}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return skills
	}

	value, ok := probeSkillValue(root)
	if !ok {
		return skills
	}

	if value.Type == gjson.String {
		for _, part := range strings.FieldsFunc(value.String(), func(r rune) bool {
			return r == ',' || r == ';'
		}) {
			if s := strings.TrimSpace(part); s != "" {
				skills = append(skills, s)
			}
		}
		return skills
	}

	value.ForEach(func(_, item gjson.Result) bool {
		var s string
		if item.IsObject() {
			s = probeString(item, "name", "value", "skill")
		} else {
			s = item.String()
		}
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
		return true
	})

	return skills
}

// probeSkillValue finds the first usable skills value: the canonical "Skills"
// key first, then the fallback keys, each accepting an array or a string
func probeSkillValue(root gjson.Result) (gjson.Result, bool) {
	if v := root.Get("Skills"); v.IsArray() || v.Type == gjson.String {
		return v, true
	}

	for _, key := range skillKeys {
		if v := root.Get(key); v.IsArray() || v.Type == gjson.String {
			return v, true
		}
		if v := root.Get("data").Get(key); v.IsArray() || v.Type == gjson.String {
			return v, true
		}
	}

	return gjson.Result{}, false
}
