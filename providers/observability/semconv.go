package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across components.

// --- Extraction Attributes ---

const (
	// AttrField is the field being recovered ("title", "description", "tags")
	AttrField = "extract.field"

	// AttrOutcome is how the value was produced (see extract.Outcome)
	AttrOutcome = "extract.outcome"

	// AttrRepairMode is the parse mode in effect ("strict", "truncated", "lenient")
	AttrRepairMode = "extract.repair_mode"

	// AttrInputLength is the byte length of the raw input
	AttrInputLength = "extract.input.length"

	// AttrInputPreview is a shortened copy of the raw input
	AttrInputPreview = "extract.input.preview"

	// AttrError is the error message attached to a failure
	AttrError = "error"
)

// --- Metric Names ---

const (
	// MetricExtractCount counts extraction calls, labelled by field and outcome
	MetricExtractCount = "jsonshape.extract.count"

	// MetricParseFailures counts structured-looking inputs that did not parse
	MetricParseFailures = "jsonshape.parse.failures"

	// MetricRepairs counts documents that parsed only after a repair pass
	MetricRepairs = "jsonshape.parse.repairs"
)
