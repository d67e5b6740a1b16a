// Command reqsim — scoped dependency resolution under concurrent load
//
// reqsim drives the di package the way a server would: a composition root
// provides process-wide dependencies (logger, app config), then a pool of
// workers handles simulated requests, each inside its own scope. Every
// request provides a request ID and a request-tagged logger; both vanish
// when the request's scope is released, including on failed requests.
//
// Usage:
//
//	reqsim run --requests 50 --workers 4 --fail-every 10
//	reqsim shadow
//
// "run" executes the simulation and prints a summary. "shadow" walks a
// three-level scope nesting and prints which binding is visible at each
// step, for a quick feel of innermost-first resolution.
package main
