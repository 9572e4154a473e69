package repository

import (
	"strings"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsFilter builds a case-insensitive "column contains term" condition
// OR-ed over columns. LIKE wildcards in term are matched literally.
func ContainsFilter(term string, columns ...string) (string, []interface{}) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	conditions := make([]string, 0, len(columns))
	params := make([]interface{}, 0, len(columns))
	for _, column := range columns {
		conditions = append(conditions, "LOWER("+column+`) LIKE ? ESCAPE '\'`)
		params = append(params, pattern)
	}
	return "(" + strings.Join(conditions, " OR ") + ")", params
}
