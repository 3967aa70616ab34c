// Package unresolver scans HTML documents for broken references: anchors,
// stylesheets, images, scripts, frames and image-map areas whose target is
// a missing local file or an unreachable URL. Local targets are resolved
// against the referencing document or a configured site root with
// directory-index fallback; external targets are probed once per run over
// a coalescing cache with a bounded worker pool.
package unresolver
