// Package emitter provides a minimal type-safe callback emitter with
// token-based unsubscription.
//
// Unlike channel-based broadcasters, handlers run synchronously on the
// emitting goroutine in subscription order, which keeps event ordering
// deterministic for single-producer components. Handlers must therefore be
// fast and must not block.
//
// Basic usage:
//
//	em := emitter.New[string]()
//	tok := em.On(func(msg string) {
//		fmt.Println(msg)
//	})
//
//	em.Emit("hello")
//	em.Off(tok) // the handler is never called again
//
// Off removes exactly the subscription identified by the token returned from
// On, so the same function value can be registered multiple times and removed
// individually. After Close, On returns a zero token and Emit is a no-op.
package emitter
