// Package mrutesting provides shared test support for the mruqueue packages: a
// slice backed reference model and a seeded test context.
package mrutesting
