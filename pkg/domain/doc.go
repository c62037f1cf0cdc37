// Package domain contains the entities of a domain appraisal: the raw metrics
// fetched from external services, the per-metric fetch outcome, the sub-scores
// derived from them and the final Appraisal. The types are free of transport
// and storage concerns so providers, the scoring pipeline and the renderers can
// share them.
package domain
