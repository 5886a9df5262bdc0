package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dategen/internal/config"
	"dategen/internal/domain"
	"dategen/internal/domain/entities"
)

func TestDefaultExclusions(t *testing.T) {
	t.Parallel()

	exclusions, err := config.LoadExclusions("")
	require.NoError(t, err)

	codes := make([]string, 0, len(exclusions))
	for _, e := range exclusions {
		codes = append(codes, e.Code)
		assert.NotEmpty(t, e.Reason, e.Code)
	}
	assert.Equal(t, []string{"cu", "kkj", "nds", "prg", "tk", "vai", "vai-Latn", "vai-Vaii", "vo"}, codes)
	assert.Empty(t, config.UnrecognizedExclusions(exclusions))
}

func TestParseExclusions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{name: "empty list", data: ""},
		{name: "valid", data: "[[language]]\ncode = \"vo\"\nreason = \"sparse\"\n"},
		{name: "missing code", data: "[[language]]\nreason = \"sparse\"\n", wantErr: true},
		{name: "missing reason", data: "[[language]]\ncode = \"vo\"\n", wantErr: true},
		{
			name:    "duplicate code",
			data:    "[[language]]\ncode = \"vo\"\nreason = \"a\"\n[[language]]\ncode = \"vo\"\nreason = \"b\"\n",
			wantErr: true,
		},
		{name: "not toml", data: "[[language", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := config.ParseExclusions([]byte(tt.data))
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUnrecognizedExclusions(t *testing.T) {
	t.Parallel()

	got := config.UnrecognizedExclusions([]entities.Exclusion{
		{Code: "vai-Latn", Reason: "r"},
		{Code: "not_a_tag!", Reason: "r"},
	})
	assert.Equal(t, []string{"not_a_tag!"}, got)
}
