package cmd

// Version is the release version reported by the version command.
const Version = "v0.1.0"
