// Package iostate saves and restores the formatting state of an output
// resource around a scope.
//
// A Saver captures the state of a Stateful resource when it is created and
// puts it back exactly once when Restore is called. The usual form is a
// deferred call, which also runs when the scope is left through an early
// return or a panic:
//
//	w := iostate.NewWriter(os.Stdout)
//	func() {
//	    defer w.Save().Restore()
//	    w.Setf(iostate.Fixed)
//	    w.SetPrecision(2)
//	    w.Float(1.0 / 3) // "0.33"
//	}()
//	w.Float(1.0 / 3) // "0.333333"
//
// Nested savers restore in reverse order of creation, as deferred calls do.
package iostate
