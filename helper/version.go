package helper

// Version is overridden at build time with
// -ldflags "-X github.com/nicoche/measurements-koyeb/helper.Version=...".
var Version = "dev"
