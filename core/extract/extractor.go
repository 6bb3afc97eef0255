package extract

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/leofalp/jsonshape/core/jsonvalue"
	"github.com/leofalp/jsonshape/core/parse"
	"github.com/leofalp/jsonshape/providers/observability"
)

// Outcome records how a recovered value was produced.
type Outcome string

const (
	// OutcomeEmpty means the input was empty or whitespace.
	OutcomeEmpty Outcome = "empty"
	// OutcomePlain means the input was plain text and was used directly.
	OutcomePlain Outcome = "plain"
	// OutcomeFound means a key search over a structured document matched.
	OutcomeFound Outcome = "found"
	// OutcomeSchedule means a schedule document's week identifier was used.
	OutcomeSchedule Outcome = "schedule"
	// OutcomeSynthesized means a description was assembled from script parts.
	OutcomeSynthesized Outcome = "synthesized"
	// OutcomeFallback means nothing usable was found.
	OutcomeFallback Outcome = "fallback"
)

const (
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldTags        = "tags"
)

// Result is a recovered string and how it was obtained.
type Result struct {
	Value   string  `json:"value"`
	Outcome Outcome `json:"outcome"`
}

// TagsResult is a recovered tag list and how it was obtained. Tags is never nil.
type TagsResult struct {
	Tags    []string `json:"tags"`
	Outcome Outcome  `json:"outcome"`
}

// Report bundles the three recoveries of a single raw field.
type Report struct {
	Title       Result     `json:"title"`
	Description Result     `json:"description"`
	Tags        TagsResult `json:"tags"`
}

// Extractor recovers titles, descriptions and tags. It holds no mutable state
// and is safe for concurrent use.
type Extractor struct {
	cfg         config
	filter      TitleFilter
	title       Query
	description Query
	tags        Query
}

// New creates an Extractor with the default key lists and limits, adjusted
// by opts.
func New(opts ...Option) *Extractor {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	e := &Extractor{
		cfg:    *cfg,
		filter: NewTitleFilter(cfg.placeholders, cfg.pendingMarkers),
	}
	e.title = Query{
		Tiers:    [][]string{cfg.titlePrimary, cfg.titleSecondary},
		MaxDepth: cfg.maxDepth,
		Accept:   e.acceptTitle,
	}
	e.description = Query{Tiers: [][]string{cfg.descriptionKeys}, MaxDepth: cfg.maxDepth}
	e.tags = Query{Tiers: [][]string{cfg.tagKeys}, MaxDepth: cfg.maxDepth}
	return e
}

func (e *Extractor) acceptTitle(v jsonvalue.Value) bool {
	s, ok := v.Str()
	return ok && e.filter.Valid(s)
}

// Title returns a title recovered from raw, or fallback.
func (e *Extractor) Title(raw, fallback string) string {
	return e.TitleResult(raw, fallback).Value
}

// TitleResult is Title with the outcome attached.
func (e *Extractor) TitleResult(raw, fallback string) Result {
	r := e.titleResult(raw, fallback)
	e.record(fieldTitle, r.Outcome)
	return r
}

func (e *Extractor) titleResult(raw, fallback string) Result {
	in := e.classify(fieldTitle, raw)
	if in.text == "" {
		return Result{Value: fallback, Outcome: OutcomeEmpty}
	}

	if !in.structured {
		if e.filter.Valid(in.text) {
			return Result{Value: in.text, Outcome: OutcomePlain}
		}
		return Result{Value: fallback, Outcome: OutcomeFallback}
	}

	if in.parsed {
		if v, found := e.title.Find(in.doc); found {
			s, _ := v.Str()
			return Result{Value: strings.TrimSpace(s), Outcome: OutcomeFound}
		}
		if id, found := e.scheduleID(in.doc); found {
			return Result{Value: id, Outcome: OutcomeSchedule}
		}
	}
	return Result{Value: fallback, Outcome: OutcomeFallback}
}

// scheduleID returns the week identifier of a schedule document whose
// identifier did not pass as a title, e.g. because it is a number.
func (e *Extractor) scheduleID(doc jsonvalue.Value) (string, bool) {
	if !e.cfg.scheduleRule {
		return "", false
	}
	body, ok := doc.Get(ScheduleBodyKey)
	if !ok || !body.Truthy() {
		return "", false
	}
	id, ok := doc.Get(ScheduleIDKey)
	if !ok || (id.Kind() != jsonvalue.String && id.Kind() != jsonvalue.Number) {
		return "", false
	}
	s, _ := id.Scalar()
	if !e.filter.Valid(s) {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// Description returns a description recovered from raw, or fallback.
// Plain text is returned trimmed without placeholder checks. A matched
// string that is empty after trimming yields fallback rather than the
// whitespace itself.
func (e *Extractor) Description(raw, fallback string) string {
	return e.DescriptionResult(raw, fallback).Value
}

// DescriptionResult is Description with the outcome attached.
func (e *Extractor) DescriptionResult(raw, fallback string) Result {
	r := e.descriptionResult(raw, fallback)
	e.record(fieldDescription, r.Outcome)
	return r
}

func (e *Extractor) descriptionResult(raw, fallback string) Result {
	in := e.classify(fieldDescription, raw)
	if in.text == "" {
		return Result{Value: fallback, Outcome: OutcomeEmpty}
	}
	if !in.structured {
		return Result{Value: e.render(in.text), Outcome: OutcomePlain}
	}
	if !in.parsed {
		return Result{Value: fallback, Outcome: OutcomeFallback}
	}
	doc := in.doc

	v, found := e.description.Find(doc)
	if !found {
		if e.cfg.synthesize {
			if s, ok := synthesize(doc, e.cfg.maxDepth); ok {
				return Result{Value: s, Outcome: OutcomeSynthesized}
			}
		}
		return Result{Value: fallback, Outcome: OutcomeFallback}
	}

	// The first truthy match decides; a non-string match is not searched past.
	s, ok := v.Str()
	s = strings.TrimSpace(s)
	if !ok || s == "" || isEncodedDocument(s) {
		return Result{Value: fallback, Outcome: OutcomeFallback}
	}
	return Result{Value: e.render(s), Outcome: OutcomeFound}
}

// Tags returns the tag list recovered from raw. The result is never nil and is
// empty when nothing usable was found.
func (e *Extractor) Tags(raw string) []string {
	return e.TagsResult(raw).Tags
}

// TagsResult is Tags with the outcome attached.
func (e *Extractor) TagsResult(raw string) TagsResult {
	r := e.tagsResult(raw)
	e.record(fieldTags, r.Outcome)
	return r
}

// TagList returns tags unchanged, or an empty list when tags is nil. It is the
// counterpart of Tags for fields that are already stored as a list.
func (e *Extractor) TagList(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func (e *Extractor) tagsResult(raw string) TagsResult {
	in := e.classify(fieldTags, raw)
	text := in.text
	if text == "" {
		return TagsResult{Tags: []string{}, Outcome: OutcomeEmpty}
	}

	if in.structured {
		if !in.parsed {
			return TagsResult{Tags: []string{}, Outcome: OutcomeFallback}
		}
		doc := in.doc
		if doc.Kind() == jsonvalue.Array {
			return TagsResult{Tags: tagItems(doc), Outcome: OutcomeFound}
		}
		if v, found := e.tags.Find(doc); found {
			switch v.Kind() {
			case jsonvalue.Array:
				return TagsResult{Tags: tagItems(v), Outcome: OutcomeFound}
			case jsonvalue.String:
				s, _ := v.Str()
				if tags, ok := tagString(s); ok {
					return TagsResult{Tags: tags, Outcome: OutcomeFound}
				}
			}
		}
		return TagsResult{Tags: []string{}, Outcome: OutcomeFallback}
	}

	if strings.Contains(text, ",") {
		return TagsResult{Tags: splitTags(text), Outcome: OutcomePlain}
	}
	if utf8.RuneCountInString(text) < e.cfg.shortTagLimit {
		return TagsResult{Tags: []string{text}, Outcome: OutcomePlain}
	}
	return TagsResult{Tags: []string{}, Outcome: OutcomeFallback}
}

// tagItems keeps the scalar elements of an array in order, as text.
func tagItems(v jsonvalue.Value) []string {
	tags := make([]string, 0, v.Len())
	for _, item := range v.Items() {
		if s, ok := item.Scalar(); ok {
			tags = append(tags, s)
		}
	}
	return tags
}

// tagString splits a comma-separated tag string. A string that is itself an
// encoded array yields the array's elements; an encoded object yields nothing.
func tagString(s string) ([]string, bool) {
	trimmed := strings.TrimSpace(s)
	if parse.LooksStructured(trimmed) {
		v, err := jsonvalue.ParseString(trimmed)
		if err == nil && v.Kind() == jsonvalue.Array {
			return tagItems(v), true
		}
		if err == nil {
			return nil, false
		}
	}
	return splitTags(s), true
}

func splitTags(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Inspect runs all three recoveries over raw.
func (e *Extractor) Inspect(raw, titleFallback, descriptionFallback string) Report {
	return Report{
		Title:       e.TitleResult(raw, titleFallback),
		Description: e.DescriptionResult(raw, descriptionFallback),
		Tags:        e.TagsResult(raw),
	}
}

// input is a raw field after trimming and, for structured text, parsing.
type input struct {
	text       string
	structured bool
	parsed     bool
	doc        jsonvalue.Value
}

// classify trims raw and parses it when it starts like a document. With fence
// unwrapping enabled, a fenced body that parses is used as the document; a
// fenced body that does not parse leaves the whole text on the plain path.
func (e *Extractor) classify(field, raw string) input {
	text, structured := parse.Candidate(raw)
	if structured {
		doc, ok := e.document(field, text)
		return input{text: text, structured: true, parsed: ok, doc: doc}
	}
	if e.cfg.unfence {
		if body, ok := parse.Unfence(text); ok {
			if doc, ok := e.document(field, body); ok {
				return input{text: body, structured: true, parsed: true, doc: doc}
			}
		}
	}
	return input{text: text}
}

// document parses a structured candidate, swallowing the error.
func (e *Extractor) document(field, text string) (jsonvalue.Value, bool) {
	doc, repaired, err := parse.Document(text, e.cfg.mode)
	observer := e.cfg.observer
	if err != nil {
		if observer != nil {
			ctx := context.Background()
			observer.Counter(observability.MetricParseFailures).Add(ctx, 1,
				observability.String(observability.AttrField, field),
			)
			observer.Debug(ctx, "structured field did not parse",
				observability.String(observability.AttrField, field),
				observability.String(observability.AttrRepairMode, e.cfg.mode.String()),
				observability.Int(observability.AttrInputLength, len(text)),
				observability.String(observability.AttrInputPreview, observability.Preview(text, 0)),
				observability.Error(err),
			)
		}
		return jsonvalue.Value{}, false
	}
	if repaired && observer != nil {
		observer.Counter(observability.MetricRepairs).Add(context.Background(), 1,
			observability.String(observability.AttrField, field),
			observability.String(observability.AttrRepairMode, e.cfg.mode.String()),
		)
	}
	return doc, true
}

func (e *Extractor) record(field string, outcome Outcome) {
	if e.cfg.observer == nil {
		return
	}
	e.cfg.observer.Counter(observability.MetricExtractCount).Add(context.Background(), 1,
		observability.String(observability.AttrField, field),
		observability.String(observability.AttrOutcome, string(outcome)),
	)
}
