// Package form holds the single-screen form: the fixed field definitions,
// the values collected for them, and the controller that moves between the
// editing view and the read-only result view.
//
// The controller is not safe for concurrent use. Front ends call it from
// their event loop, one handler at a time.
package form
