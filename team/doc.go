// Package team defines the normalized franchise entities and the resource
// fetchers that map provider-native result sets onto them.
//
// Fetchers are pure: parameters in, normalized value or typed failure out.
// They never touch the cache; callers wrap them in cache loads.
package team
