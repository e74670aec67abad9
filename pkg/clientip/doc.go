// Package clientip resolves the visitor's address when the API runs behind a
// CDN or reverse proxy, and makes it available to request logs.
//
// Only enable proxy headers the deployment actually sets; otherwise clients
// can spoof them.
package clientip
