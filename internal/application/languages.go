package application

import (
	"sort"

	"dategen/internal/domain/entities"
)

// BuildLanguageSet returns the sorted union of the CLDR and supplementary
// languages minus the excluded ones, plus the sorted list of languages that
// the exclusions actually removed.
func BuildLanguageSet(cldr, supplementary []string, exclusions []entities.Exclusion) (languages, excluded []string) {
	skip := make(map[string]struct{}, len(exclusions))
	for _, e := range exclusions {
		skip[e.Code] = struct{}{}
	}

	seen := make(map[string]struct{}, len(cldr)+len(supplementary))
	dropped := make(map[string]struct{})
	for _, list := range [][]string{cldr, supplementary} {
		for _, lang := range list {
			if _, ok := skip[lang]; ok {
				dropped[lang] = struct{}{}
				continue
			}
			if _, ok := seen[lang]; ok {
				continue
			}
			seen[lang] = struct{}{}
			languages = append(languages, lang)
		}
	}
	for lang := range dropped {
		excluded = append(excluded, lang)
	}

	sort.Strings(languages)
	sort.Strings(excluded)
	return languages, excluded
}

func toSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, s := range list {
		set[s] = struct{}{}
	}
	return set
}
