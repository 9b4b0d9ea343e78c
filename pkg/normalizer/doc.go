// Package normalizer turns raw recipe-API and profile-API records into the
// view models the app renders.
//
// Every function is pure: it reads only its arguments, allocates a fresh
// result and touches no shared state, so calls from concurrent in-flight
// responses need no coordination. Repeated calls on an unchanged input
// return deep-equal results.
//
// Field-level gaps are never errors. Absent strings become "", absent
// sequences become empty (non-nil) slices and absent counts become 0. Only a
// missing top-level record fails, with an INVALID_INPUT *errors.AppError.
//
// Normalization includes:
//   - Ingredients: slots 1..20 in order, blank ingredients dropped, gaps allowed
//   - Instructions: split on CRLF, each step trimmed, blank steps dropped
//   - Tags: split on commas, each tag trimmed, blank tags dropped
//   - Profiles: null or non-numeric counts become 0, null strings become ""
//   - Lists: a nil list is an empty result; bad entries are skipped and logged
package normalizer
