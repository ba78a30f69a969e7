// SPDX-License-Identifier: Apache-2.0

package models

import "fmt"

// ResourceKey identifies which user-data category a synchroniser instance
// manages. It partitions the remote store and the local checkpoint namespace:
// every key is synchronized independently by its own engine instance.
type ResourceKey string

const (
	ResourceSettings    ResourceKey = "settings"
	ResourceKeybindings ResourceKey = "keybindings"
	ResourceExtensions  ResourceKey = "extensions"
	ResourceGlobalState ResourceKey = "globalState"
)

// AllResourceKeys lists every synchronized resource category in a stable
// order, used by drivers that iterate all synchronisers.
func AllResourceKeys() []ResourceKey {
	return []ResourceKey{
		ResourceSettings,
		ResourceKeybindings,
		ResourceExtensions,
		ResourceGlobalState,
	}
}

// ParseResourceKey converts a raw string (e.g. a URL path segment) into a
// ResourceKey, or returns an error for unknown categories.
func ParseResourceKey(raw string) (ResourceKey, error) {
	key := ResourceKey(raw)
	if !key.Valid() {
		return "", fmt.Errorf("unknown resource key %q", raw)
	}
	return key, nil
}

// Valid reports whether the key names a known resource category.
func (k ResourceKey) Valid() bool {
	switch k {
	case ResourceSettings, ResourceKeybindings, ResourceExtensions, ResourceGlobalState:
		return true
	default:
		return false
	}
}

func (k ResourceKey) String() string {
	return string(k)
}
