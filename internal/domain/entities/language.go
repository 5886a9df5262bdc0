package entities

// Exclusion is a language kept out of the date translation output.
type Exclusion struct {
	Code   string `toml:"code"`
	Reason string `toml:"reason"`
}

// Layout locates the source datasets and the generated output.
//
// Directory fields are slash-separated and relative to Root. Sources are read
// through an fs.FS rooted at Root; outputs are written to Root joined with the
// output directories.
type Layout struct {
	Root string

	CLDRDateDir          string
	CLDRNumeralDir       string
	SupplementaryDir     string
	SupplementaryDateDir string

	OutputDir        string
	DateOutputDir    string
	NumeralOutputDir string

	Exclusions []Exclusion
}

// Summary describes a finished generation run.
type Summary struct {
	DateModules    int
	NumeralModules int
	Excluded       []string
	Paths          []string
}
