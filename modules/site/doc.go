// Package site assembles the blog API router: the contact and subscribe
// endpoints under /api, health probes and the metrics endpoint, wrapped in
// request id, client address, environment, logging and panic recovery
// middleware.
package site
