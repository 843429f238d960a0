package config

const (
	// ConfigDirName is the directory holding carb's project configuration.
	ConfigDirName = ".carb"
	// ConfigFileName is the project configuration file inside ConfigDirName.
	ConfigFileName = "config.yml"

	EnvPrefix = "CARB"

	ChdirFlag     = "chdir"
	LogsLevelFlag = "logs-level"
	LogsFileFlag  = "logs-file"

	DefaultLogsLevel = "Info"
	DefaultLogsFile  = "/dev/stderr"
)
