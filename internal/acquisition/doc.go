// Package acquisition feeds the tournament engine: it scans a folder for
// candidate images, derives each photo's initial status from its color label,
// prefetches every thumbnail before a folder counts as loaded, and serves
// preview decodes off the coordinating goroutine.
//
// Preview loads are last-request-wins per slot. Each request bumps a
// monotonically increasing generation counter and captures its value; a
// completed decode whose captured generation no longer matches the slot's
// current one is stale and must be dropped by the consumer. There is no hard
// cancellation of a decode already underway; workers merely skip jobs that
// went stale while queued, and the consumer-side check catches the rest.
package acquisition
