/*
Package ddregistry owns the per-span state that ddfmt needs between host
framework callbacks: the ordered fields recorded on each open span, the
non-owning link to its parent, and the lazily computed Datadog correlation
ids.

The host framework may deliver callbacks from many goroutines at once, so
every method takes the registry lock.  No method performs I/O or calls out
of the package while holding it; everything a caller gets back is a copy.
*/
package ddregistry

import (
	"context"
	"sync"

	"github.com/muir/list"

	"github.com/ddfmt/ddfmt-go/ddfield"
	"github.com/ddfmt/ddfmt-go/ddtrace"
)

// SpanKey is the host framework's opaque span identifier, stable for the
// span's lifetime.  Zero is reserved to mean "no span".
type SpanKey uint64

const NoSpan SpanKey = 0

type node struct {
	parent SpanKey // NoSpan for root spans
	fields []ddfield.Field
	ids    *ddtrace.IDs // immutable once set
	seed   ddtrace.TraceID
	seeded bool
}

type Registry struct {
	mu    sync.Mutex
	spans map[SpanKey]*node
}

func New() *Registry {
	return &Registry{
		spans: make(map[SpanKey]*node),
	}
}

// SpanCreated allocates the state for a newly created span.  parent is the
// enclosing span's key, or NoSpan for a root span.  Root spans read the
// ambient OpenTelemetry trace id from ctx exactly once, here; it becomes
// the trace-id seed used when the span's ids are first needed.  Initial
// fields (recorded at creation time by the host) may be supplied.
func (r *Registry) SpanCreated(ctx context.Context, key SpanKey, parent SpanKey, fields ...ddfield.Field) {
	n := &node{parent: parent}
	if parent == NoSpan {
		if seed, ok := ddtrace.FromContext(ctx); ok {
			n.seed = seed
			n.seeded = true
		}
	}
	for _, f := range fields {
		n.fields = ddfield.Upsert(n.fields, f)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spans[key] = n
}

// FieldsRecorded adds pairs to an open span.  A key recorded twice keeps
// only the newest value, moved to the end of the span's field order.
// Recording on an unknown key is a no-op: the host has already closed the
// span and the fields have nowhere to live.
func (r *Registry) FieldsRecorded(key SpanKey, fields ...ddfield.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.spans[key]
	if !ok {
		return
	}
	for _, f := range fields {
		n.fields = ddfield.Upsert(n.fields, f)
	}
}

// SpanClosed drops the span's state, including any cached ids.  The host
// contract is that children close before their parents; the registry does
// not enforce it, but a chain walk that hits a closed parent truncates
// rather than failing (see FieldChain).
func (r *Registry) SpanClosed(key SpanKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.spans, key)
}

// OpenSpans reports how many spans are currently tracked.
func (r *Registry) OpenSpans() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.spans)
}

// IdentifiersFor returns the (trace, span) id pair for key, computing and
// caching it on first use.  The trace id comes from the parent chain,
// resolved recursively: the root's ids are generated on demand (seeded
// from its creation-time OpenTelemetry context when one was present) and
// every descendant shares the root's trace id.  The span id is fresh per
// span.  Returns false if key is not an open span.
func (r *Registry) IdentifiersFor(key SpanKey) (ddtrace.IDs, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.identifiersLocked(key)
}

func (r *Registry) identifiersLocked(key SpanKey) (ddtrace.IDs, bool) {
	n, ok := r.spans[key]
	if !ok {
		return ddtrace.IDs{}, false
	}
	if n.ids != nil {
		return *n.ids, true
	}
	ids := ddtrace.IDs{SpanID: ddtrace.NewSpanID()}
	if n.parent != NoSpan {
		if parentIDs, ok := r.identifiersLocked(n.parent); ok {
			ids.TraceID = parentIDs.TraceID
		}
		// a dangling parent leaves TraceID zero; the span is then
		// treated as a root below
	}
	if ids.TraceID.IsZero() {
		if n.seeded {
			ids.TraceID = n.seed
		} else {
			ids.TraceID = ddtrace.NewTraceID()
		}
	}
	n.ids = &ids
	return ids, true
}

// FieldChain returns copies of the field lists for key and its ancestors,
// outermost span first.  A missing ancestor truncates the chain at that
// point instead of failing.  The copies are taken under the lock so the
// caller can merge and serialize without holding anything.
func (r *Registry) FieldChain(key SpanKey) [][]ddfield.Field {
	r.mu.Lock()
	defer r.mu.Unlock()
	var chain [][]ddfield.Field // collected innermost first
	for key != NoSpan {
		n, ok := r.spans[key]
		if !ok {
			break
		}
		chain = append(chain, list.Copy(n.fields))
		key = n.parent
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
