package version

// Version identifies the build. Releases override it with
// -ldflags "-X GPAConverter/internal/version.Version=...".
var Version = "dev"
