// Package setting implements validated value holders for instrument
// parameters.
//
// A setting owns one or more groups of valid values. Choice settings
// hold an ordered label list per group, range settings hold an
// inclusive numeric range per group, and labeled choices bind each
// label to a numeric value so an assignment may be made by label or by
// number. Indexed settings select the active group through a 0-based
// index and remember the last accepted value per index; the
// non-indexed types are single-group specializations of their indexed
// counterparts.
//
// Every assignment is validated against the active group before any
// state changes. A rejected assignment leaves the setting untouched.
package setting
