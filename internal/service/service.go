// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// data from handlers, applies the domain rules (credential hashing,
// identifier checks, patch building), and calls repositories to touch the
// store. Domain outcomes are returned as *errs.HTTPError; anything else is
// an internal failure the global error handler turns into a 500.
package service
