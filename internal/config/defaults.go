package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestPath is the default test path
	DefaultTestPath = "."
	// DefaultConfigFile is the config file looked up in the project path
	DefaultConfigFile = "tagcat.toml"
	// DefaultEnvFile is the env file looked up in the project path
	DefaultEnvFile = ".env"
	// DefaultOutputFile is the default report file name, without extension
	DefaultOutputFile = "test-catalog"
	// DefaultOutputDir is the default report directory
	DefaultOutputDir = "build"
	// DefaultOutputFormat is the default report format
	DefaultOutputFormat = "json"
	// DefaultProcessors is the default number of parser workers
	DefaultProcessors = 4
	// DefaultLogLevel is the default log level
	DefaultLogLevel = "warn"
)

// DefaultPathsToIgnore are the default directories to ignore when scanning for tests
var DefaultPathsToIgnore = []string{
	"build",
	"cmake-build-debug",
	"cmake-build-release",
	"third_party",
	"external",
	"vendor",
	"node_modules",
	"out",
}

// DefaultSourceSuffixes are the file suffixes scanned for test declarations
var DefaultSourceSuffixes = []string{
	".cpp",
	".cc",
	".cxx",
	".hpp",
	".h",
}
