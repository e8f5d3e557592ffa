// Package redis provides Redis cache key management and TTL definitions.
// All cache keys and TTLs should be defined in this file to ensure centralized management.
package redis

import "time"

// Cache Key Prefixes
// All Redis cache key prefixes are defined here to ensure consistent naming
// and centralized management across the application.
const (
	// PermissionsKeyPrefix is the prefix for repository permission cache keys
	// Format: mgmt:perm:{repository}
	PermissionsKeyPrefix = "mgmt:perm:"

	// PatternsKeyPrefix is the prefix for repository path pattern cache keys
	// Format: mgmt:pat:{repository}
	PatternsKeyPrefix = "mgmt:pat:"

	// RepositoriesKey is the cache key for the repository name listing
	RepositoriesKey = "mgmt:repos"
)

// Cache TTL Definitions
// All Redis cache TTL values are defined here to ensure consistent
// expiration policies across the application.
const (
	// PermissionsTTL is the TTL for repository permission cache (5 minutes)
	PermissionsTTL = 5 * time.Minute

	// RepositoriesTTL is the TTL for the repository listing cache (1 minute)
	RepositoriesTTL = 1 * time.Minute
)

// PermissionsKey generates a cache key for a repository's permission records
func PermissionsKey(repo string) string {
	return PermissionsKeyPrefix + repo
}

// PatternsKey generates a cache key for a repository's path patterns
func PatternsKey(repo string) string {
	return PatternsKeyPrefix + repo
}
