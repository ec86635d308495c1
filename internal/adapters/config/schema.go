package config

// File represents the structure of the optional xcpack.yaml file placed at
// a package root. Every field can be overridden by a command-line flag.
type File struct {
	Platforms     []string `yaml:"platforms"`
	Configuration string   `yaml:"configuration"`
	Output        string   `yaml:"output"`
	Staging       string   `yaml:"staging"`
	Parallelism   int      `yaml:"parallelism"`
	Zip           bool     `yaml:"zip"`
	URLBase       string   `yaml:"urlBase"`
	Tag           string   `yaml:"tag"`
}
