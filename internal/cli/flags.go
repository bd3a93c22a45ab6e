package cli

import "tagcat/internal/config"

// Flags holds command-line flags
type Flags struct {
	ConfigPath    string
	Processors    int
	TestPath      string
	NameFilter    string
	FailFast      bool
	FilenameTags  bool
	LogLevel      string
	NoProgress    bool
	IncludeHidden bool
	Tag           string
	Order         string
	Verbose       bool
	Format        string
	Output        string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigPath:    f.ConfigPath,
		Processors:    f.Processors,
		TestPath:      f.TestPath,
		NameFilter:    f.NameFilter,
		FailFast:      f.FailFast,
		FilenameTags:  f.FilenameTags,
		LogLevel:      f.LogLevel,
		NoProgress:    f.NoProgress,
		IncludeHidden: f.IncludeHidden,
		Tag:           f.Tag,
		Order:         f.Order,
		Verbose:       f.Verbose,
		Format:        f.Format,
		Output:        f.Output,
	}
}
