// Package version holds the carb build version.
package version

// Version is set at build time:
//
//	go build -ldflags "-X github.com/carbon-design-system/carb/pkg/version.Version=1.2.3"
var Version = "0.0.0-dev"
