package catches

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Species is an entry of the remote species reference list.
type Species struct {
	Name string `json:"Nom_francais" yaml:"name"`
}

// SortSpecies orders species by name the way a French reader expects:
// accents and case do not push "Éperlan" after "Truite".
func SortSpecies(list []Species) {
	c := collate.New(language.French, collate.Loose)
	slices.SortStableFunc(list, func(a, b Species) int {
		return c.CompareString(a.Name, b.Name)
	})
}

// SpeciesNames returns the names in list order, skipping blank entries.
func SpeciesNames(list []Species) []string {
	names := make([]string, 0, len(list))
	for _, s := range list {
		if s.Name != "" {
			names = append(names, s.Name)
		}
	}
	return names
}
