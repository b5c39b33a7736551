package economy

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var locationNameReplacer = strings.NewReplacer("_", " ", ".", " ", "-", " ")

// displayName turns a location id such as "delta_base" into "Delta Base"
func displayName(locationID string) string {
	words := strings.Fields(locationNameReplacer.Replace(locationID))
	return cases.Title(language.English).String(strings.Join(words, " "))
}
