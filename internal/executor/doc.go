/*
Package executor performs outbound HTTP calls for Restless.

The package is a thin transport collaborator: it translates a
types.RequestSpec into one HTTP exchange and returns the raw status,
headers and body. It knows nothing about tabs, focus, or the event
loop; cancellation and deadlines come in through the context.

Query parameters are URL-encoded and appended by the request builder,
request headers are sent in spec order, and the response body is read
fully before returning. Status codes are never treated as errors here;
classifying 4xx/5xx is a display concern.
*/
package executor
