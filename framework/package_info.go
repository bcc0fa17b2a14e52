// Package framework contains the low-level test harness infrastructure that is
// independent of what is being tested.
//
// The general model is:
//
// 1. There is a notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to
// accumulate success/failure results outside of the Go test runner.
//
// 2. Tests can be selected or excluded with regex filters supplied on the
// command line.
//
// 3. Each test owns a capturing debug logger whose output is attached to the
// test's result, so diagnostic detail is available after the run without
// re-executing anything.
//
// The domain-specific code that knows what is being tested (driving a browser
// against the translator page, making assertions about its output) lives in
// other packages and builds its own test API on top of Context.
package framework
