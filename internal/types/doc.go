/*
Package types defines the core data structures shared across Restless.

# Overview

The package provides:
  - RequestSpec: one editable HTTP exchange (method, URL, headers,
    query parameters, body)
  - PairList: ordered key/value collections with last-write-wins lookup
  - Response and ResponseState: raw response data plus the per-tab
    lifecycle (empty, pending, succeeded, failed)

# Ownership

A RequestSpec belongs to exactly one tab and is never shared between
tabs. When a request is sent, the spec is deep-copied with Clone so the
in-flight call cannot observe later edits.

# Response lifecycle

ResponseState moves strictly forward: a send replaces any prior result
with the pending state, and exactly one terminal outcome (succeeded or
failed) is applied by the event loop. Stale results from superseded
sends are discarded before they ever reach a ResponseState.
*/
package types
