package domain

// Settings are the resolved run options: config-file values merged with
// command-line overrides. Zero values mean "not set" during merging; Finalize
// fills the defaults.
type Settings struct {
	Platforms     []PlatformKind
	Configuration Configuration
	OutputDir     string
	StagingRoot   string
	Parallelism   int
	Zip           bool
	URLBase       string
	Tag           string
}

// Finalize applies defaults for anything left unset after merging.
func (s *Settings) Finalize() {
	if s.Configuration == "" {
		s.Configuration = ConfigurationRelease
	}
	if s.OutputDir == "" {
		s.OutputDir = "xcpack-out"
	}
	if s.StagingRoot == "" {
		s.StagingRoot = ".xcpack"
	}
	if s.Parallelism <= 0 {
		s.Parallelism = 1
	}
}

// ReleaseMode reports whether remote-reference output was requested.
func (s *Settings) ReleaseMode() bool {
	return s.Zip && s.URLBase != "" && s.Tag != ""
}
