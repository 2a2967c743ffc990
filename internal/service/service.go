// Package service holds the business logic between the HTTP handlers and the
// repositories: entity registries, the trip dispatch engine and the analytics
// aggregator.
package service

import "strings"

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
