package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"dategen/internal/domain"
	"dategen/internal/domain/entities"
)

//go:embed exclusions.toml
var defaultExclusions []byte

type exclusionFile struct {
	Languages []entities.Exclusion `toml:"language"`
}

// LoadExclusions lit la liste d'exclusions située à path, ou la liste
// embarquée lorsque path est vide.
func LoadExclusions(path string) ([]entities.Exclusion, error) {
	data := defaultExclusions
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: lecture des exclusions: %w", err)
		}
	}
	return ParseExclusions(data)
}

// ParseExclusions décode une liste d'exclusions TOML. Chaque entrée exige un
// code et une raison ; les codes sont uniques.
func ParseExclusions(data []byte) ([]entities.Exclusion, error) {
	var file exclusionFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("config: %w: exclusions: %w", domain.ErrInvalidConfig, err)
	}

	seen := make(map[string]struct{}, len(file.Languages))
	for i, e := range file.Languages {
		if strings.TrimSpace(e.Code) == "" {
			return nil, fmt.Errorf("config: %w: l'exclusion #%d n'a pas de code", domain.ErrInvalidConfig, i+1)
		}
		if strings.TrimSpace(e.Reason) == "" {
			return nil, fmt.Errorf("config: %w: l'exclusion %q n'a pas de raison", domain.ErrInvalidConfig, e.Code)
		}
		if _, ok := seen[e.Code]; ok {
			return nil, fmt.Errorf("config: %w: l'exclusion %q apparaît deux fois", domain.ErrInvalidConfig, e.Code)
		}
		seen[e.Code] = struct{}{}
	}
	return file.Languages, nil
}

// UnrecognizedExclusions renvoie les codes qui ne sont pas des étiquettes de
// langue BCP 47. Ils s'appliquent quand même ; l'appelant se contente d'avertir.
func UnrecognizedExclusions(exclusions []entities.Exclusion) []string {
	var bad []string
	for _, e := range exclusions {
		if _, err := language.Parse(e.Code); err != nil {
			bad = append(bad, e.Code)
		}
	}
	return bad
}
