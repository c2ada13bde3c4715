// Package types defines the configuration and standard error values shared
// by the bounded containers and the boundctl tool.
//
// Container packages panic with errors wrapping the fatal sentinels below so
// that a recovering caller can still classify the failure with errors.Is.
package types
