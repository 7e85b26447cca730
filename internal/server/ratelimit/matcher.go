package ratelimit

import (
	"strings"
)

// Match precedence: a literal path beats a route template, which beats a
// trailing-slash prefix.
const (
	rankPrefix = iota + 1
	rankTemplate
	rankExact
)

// MatchEndpoint matches a request path and method to an endpoint configuration.
// Returns the matching EndpointConfig or nil if no match is found.
//
// A configured path is a literal ("/v1/validate"), a route template in the
// router's syntax whose "{name}" segments match any one segment
// ("/v1/questions/{key}"), or a prefix ending in "/" that matches everything
// below it. An empty Method matches every method. Among prefixes the longest
// wins. A trailing slash on the request path is ignored.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	path = cleanPath(path)

	// Special case: health check endpoint is unlimited
	if path == "/health" && method == "GET" {
		return &EndpointConfig{Path: "/health", Method: "GET"}
	}

	var best *EndpointConfig
	bestRank := 0
	for i := range configs {
		config := &configs[i]
		if config.Method != "" && config.Method != method {
			continue
		}
		rank := matchRank(config.Path, path)
		if rank == 0 {
			continue
		}
		if rank > bestRank || (rank == bestRank && len(config.Path) > len(best.Path)) {
			best, bestRank = config, rank
		}
	}
	return best
}

func matchRank(pattern, path string) int {
	switch {
	case pattern == path:
		return rankExact
	case strings.HasSuffix(pattern, "/"):
		if strings.HasPrefix(path, pattern) {
			return rankPrefix
		}
	case strings.Contains(pattern, "{"):
		if matchTemplate(pattern, path) {
			return rankTemplate
		}
	}
	return 0
}

// matchTemplate compares segment by segment; a "{name}" segment matches any
// non-empty segment.
func matchTemplate(pattern, path string) bool {
	want := strings.Split(strings.Trim(pattern, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")
	if len(want) != len(got) {
		return false
	}
	for i, segment := range want {
		if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
			if got[i] == "" {
				return false
			}
			continue
		}
		if segment != got[i] {
			return false
		}
	}
	return true
}

func cleanPath(path string) string {
	if len(path) > 1 {
		return strings.TrimSuffix(path, "/")
	}
	return path
}
