package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dategen/internal/application"
	"dategen/internal/domain/entities"
)

func TestBuildLanguageSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		cldr          []string
		supplementary []string
		exclusions    []entities.Exclusion
		wantLangs     []string
		wantExcluded  []string
	}{
		{
			name:          "union sorted without duplicates",
			cldr:          []string{"fr", "en"},
			supplementary: []string{"en", "zh-Hant-HK"},
			wantLangs:     []string{"en", "fr", "zh-Hant-HK"},
		},
		{
			name:          "excluded even when in both sources",
			cldr:          []string{"en", "vo"},
			supplementary: []string{"vo", "fr"},
			exclusions:    []entities.Exclusion{{Code: "vo", Reason: "sparse"}, {Code: "cu", Reason: "sparse"}},
			wantLangs:     []string{"en", "fr"},
			wantExcluded:  []string{"vo"},
		},
		{
			name:         "exclusion matches whole identifiers only",
			cldr:         []string{"vai", "vai-Latn"},
			exclusions:   []entities.Exclusion{{Code: "vai", Reason: "sparse"}},
			wantLangs:    []string{"vai-Latn"},
			wantExcluded: []string{"vai"},
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			langs, excluded := application.BuildLanguageSet(tt.cldr, tt.supplementary, tt.exclusions)
			assert.Equal(t, tt.wantLangs, langs)
			assert.Equal(t, tt.wantExcluded, excluded)
		})
	}
}
