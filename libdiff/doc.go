// Package libdiff computes differences between QMLON documents.
//
// Diff walks two trees and reports a Change for every property, list element
// or child which was inserted, deleted or replaced. Children and list
// elements are aligned with a sequence diff, so inserting a child in the
// middle of an object reports one insertion rather than a cascade of
// replacements.
//
// Text produces a line diff of two encoded documents.
package libdiff
