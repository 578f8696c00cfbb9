// Package geo supplies the geographic collaborators for the address
// workflow: a Nominatim geocoding client, an Overpass road-geometry client,
// and the single forward Web Mercator projection that turns their
// longitude/latitude output into the metric plane the geometry core
// operates in.
//
// The clients are deliberately thin synchronous wrappers over the public
// OSM HTTP APIs. Retries and rate limiting are the caller's concern; both
// services throttle aggressively, so production callers should cache.
package geo
