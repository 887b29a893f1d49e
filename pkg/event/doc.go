// Package event provides the synchronous observer registry every model in
// this module builds on. Handlers run on the caller's stack in registration
// order; there is no queueing or deferred dispatch.
package event
