package casebook

// yamlCase is the on-disk form of a regression case. Exactly one of Input
// and InputFile is set; InputFile is relative to the casebook file.
type yamlCase struct {
	Name      string `yaml:"name"`
	Day       int    `yaml:"day"`
	Part      int    `yaml:"part"`
	Input     string `yaml:"input,omitempty"`
	InputFile string `yaml:"input_file,omitempty"`
	Want      *int64 `yaml:"want"`
}

// yamlCasebook is the top-level structure of a casebook file.
type yamlCasebook struct {
	Cases []yamlCase `yaml:"cases"`
}
