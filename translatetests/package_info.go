// Package translatetests contains the scenario-driven test suite for the
// Singlish-to-Sinhala translator page, built on the framework and browser
// packages.
//
// Every scenario runs the same sequence on its own isolated page: navigate
// (with bounded retry), locate an input surface, inject the Singlish input,
// verify injection fidelity, wait for the translation output, compare it to
// the expected text with strict equality, and capture evidence regardless of
// outcome. Scenarios share no state and may run on parallel workers.
package translatetests
