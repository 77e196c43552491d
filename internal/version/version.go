package version

// Version is set at build time with -ldflags "-X github.com/startright-uk/startright/internal/version.Version=...".
var Version = "dev"
