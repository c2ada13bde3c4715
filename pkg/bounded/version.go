// Package bounded holds module-wide metadata for the bounded containers.
package bounded

// Version is the release version reported by boundctl.
const Version = "0.1.0"
