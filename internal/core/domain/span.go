package domain

// Span attribute keys set on the per-directory span of a lock run.
const (
	SpanAttrDir            = "reqlock.dir"
	SpanAttrMode           = "reqlock.mode"
	SpanAttrDeclaration    = "reqlock.declaration"
	SpanAttrLock           = "reqlock.lock"
	SpanAttrResolvedDigest = "reqlock.resolved_digest"
)

// Values of SpanAttrMode.
const (
	ModeCheck = "check"
	ModeWrite = "write"
)
