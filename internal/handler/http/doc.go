// Package http implements the HTTP surface of the catalog sync daemon: the
// signed webhook endpoint that receives remote change notifications, and a
// small local API for sync control, replica queries and cached media.
package http
