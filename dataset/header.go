package dataset

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

var nonAlphanumeric = regexp.MustCompile("[^a-zA-Z0-9]+")

// generateColumnName names a column after its position.
func generateColumnName(index int) string {
	return fmt.Sprintf("column_%d", index+1)
}

// normalizeHeaders trims header cells and names the empty ones after their position.
func normalizeHeaders(row []string) []string {
	headers := make([]string, len(row))
	for i, h := range row {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if h == "" {
			h = generateColumnName(i)
		}
		headers[i] = h
	}
	return ValidateHeaders(headers)
}

// ValidateHeaders makes header names unique by appending _1, _2 and so on to repeats.
func ValidateHeaders(headers []string) []string {
	seen := make(map[string]int)
	result := make([]string, len(headers))

	for i, header := range headers {
		originalHeader := header
		counter := 1

		// bump the counter until the name is free
		for {
			if count, exists := seen[header]; exists {
				header = fmt.Sprintf("%s_%d", originalHeader, counter)
				counter++
			} else {
				seen[header] = count + 1
				break
			}
		}

		result[i] = header
	}

	return result
}

// replaceSpecialSymbols keeps ASCII letters and digits and joins the rest with single underscores.
func replaceSpecialSymbols(input string) string {
	processed := nonAlphanumeric.ReplaceAllString(input, "_")
	return strings.Trim(processed, "_")
}

// columnAlias is the command-friendly spelling of a column name: "Unit Price" -> "unit_price",
// "Город" -> "gorod". An index >= 0 supplies a fallback for names with nothing left.
func columnAlias(name string, index int) string {
	alias := strings.ToLower(replaceSpecialSymbols(unidecode.Unidecode(strings.TrimSpace(name))))
	if alias == "" && index >= 0 {
		return generateColumnName(index)
	}
	return alias
}

func columnAliases(names []string) []string {
	aliases := make([]string, len(names))
	for i, name := range names {
		aliases[i] = columnAlias(name, i)
	}
	return ValidateHeaders(aliases)
}

// Alias returns the command-friendly spelling of any name, "" when nothing is left of it.
func Alias(name string) string {
	return columnAlias(name, -1)
}
