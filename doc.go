/*
Package ddfmt formats instrumentation events as single-line JSON records in
the shape Datadog's log intake expects.  It plugs into a span-based host
framework: the host delivers span lifecycle and field-recording callbacks
plus the events themselves; ddfmt keeps the per-span state, merges the
field data contributed by the enclosing spans and the event, attaches
Datadog correlation ids, and writes one line per event to a pluggable sink.

ddfmt is not a general logging framework.  It implements exactly one record
shape and one field-merging policy, and it does not buffer, batch, or ship
records anywhere; the sink decides where the bytes go.
*/
package ddfmt
