package storage

import (
	"fmt"
	"regexp"
	"strings"
)

// PlaceholderExt marks a document that is listed but not yet downloaded,
// e.g. ".report.txt.icloud" stands for "report.txt".
const PlaceholderExt = ".icloud"

var placeholderExpr = regexp.MustCompile(`(.*?)(\.(.*?)\.icloud)$`)

// SubPath returns the part of to below from, always starting with "/".
func SubPath(from, to string) (string, error) {
	from = suffixIf(prefixIf(from, "/"), "/")
	to = suffixIf(prefixIf(to, "/"), "/")
	if !strings.HasPrefix(to, from) {
		return "", fmt.Errorf("%v not a sub path to %v", from, to)
	}
	return prefixIf(strings.TrimSuffix(to[len(from):], "/"), "/"), nil
}

// Join joins segments into a single absolute path.
func Join(segments ...string) string {
	var ret strings.Builder
	for _, segment := range segments {
		ret.WriteString(strings.TrimSuffix(prefixIf(segment, "/"), "/"))
	}
	return ret.String()
}

// RemoveDotExt maps a placeholder name to the document name it stands for.
func RemoveDotExt(path string) string {
	return placeholderExpr.ReplaceAllString(path, "$1$3")
}

// IsPlaceholder returns true for a not yet downloaded document name.
func IsPlaceholder(path string) bool {
	return placeholderExpr.MatchString(path)
}

// Ext returns the text after the last dot.
func Ext(path string) string {
	if index := strings.LastIndex(path, "."); index != -1 {
		return path[index+1:]
	}
	return path
}

func prefixIf(path, prefix string) string {
	if strings.HasPrefix(path, prefix) {
		return path
	}
	return prefix + path
}

func suffixIf(path, suffix string) string {
	if strings.HasSuffix(path, suffix) {
		return path
	}
	return path + suffix
}
