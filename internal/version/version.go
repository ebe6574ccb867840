// internal/version/version.go
package version

// Version is the release string stamped at build time:
//
//	go build -ldflags "-X dwdeck/internal/version.Version=v1.2.3"
var Version = "dev"
