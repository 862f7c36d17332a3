package cache

import "strings"

// GlobalKeyPrefix namespaces every key written by this service.
const GlobalKeyPrefix = "quizforge"

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return baseKey + ":" + strings.Join(paramsKey, "_")
	}
	return baseKey
}

// QuizKey is the key of a cached quiz record.
func QuizKey(quizID string) string {
	return GenerateCacheKey("quiz", "item", quizID)
}
