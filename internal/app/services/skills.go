package services

import (
	"encoding/json"
	"strings"
)

// ParseSkills splits a comma-separated skills field into a list, trimming
// whitespace and dropping empty entries.
func ParseSkills(input string) []string {
	skills := []string{}
	for _, s := range strings.Split(input, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// EncodeSkills serializes a skills list for the student row's text column.
func EncodeSkills(skills []string) string {
	if skills == nil {
		skills = []string{}
	}
	b, err := json.Marshal(skills)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// DecodeSkills deserializes the stored skills column. Unset or malformed
// data yields an empty list.
func DecodeSkills(stored string) []string {
	if stored == "" {
		return []string{}
	}
	var skills []string
	if err := json.Unmarshal([]byte(stored), &skills); err != nil {
		return []string{}
	}
	if skills == nil {
		return []string{}
	}
	return skills
}
