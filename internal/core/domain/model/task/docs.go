// Package task models deferred work queued for background processing, such as
// delivery confirmations sent by messengers while offline.
package task
