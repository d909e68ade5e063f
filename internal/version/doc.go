// Package version holds build version information.
package version
