// Package runner drives the execution of registered pattern examples and
// normalizes every outcome into a Result. No failure of an individual
// example escapes the runner boundary: setup errors, run errors, transcript
// mismatches, and time-budget overruns are all captured as Result values so
// one broken demonstration can never abort or hide the rest of the batch.
package runner
