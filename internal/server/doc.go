// Package server exposes the address workflow over HTTP: GET /orient takes
// a street address and returns the estimated facing bearing, compass label,
// nearest road and distance to it. The pixel workflows stay CLI-only; they
// need an image on local disk.
package server
