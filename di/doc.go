// Package di resolves named values through a stack of hierarchical scopes.
//
// Callers register values under string keys ("provide") and retrieve them by
// key ("inject"). Resolution is scoped: a nested scope can shadow or add
// bindings without mutating the enclosing state, and everything it provided is
// discarded when the scope ends — on normal return, early return, error, and
// panic alike.
//
// This is deliberately not a container framework: there is no constructor
// discovery, no dependency graph, no lifetime management, and no type-based
// lookup. Keys are explicit strings, values are untyped, and the whole engine
// is a per-flow stack of frames over one shared root.
//
// # Provide and Inject
//
//	di.Provide(ctx, "config", cfg)
//	v, err := di.Inject(ctx, "config")
//
// Namespaces keep unrelated binding spaces apart; calls without In use
// DefaultNamespace:
//
//	di.Provide(ctx, "db", primary, di.In("production"))
//	di.Provide(ctx, "db", fake, di.In("test"))
//
// TryInject and MustInject cover the non-erroring and panicking variants, and
// the generic InjectAs returns a typed value. Update rewrites a binding in the
// frame where it currently lives.
//
// # Scopes
//
// EnterScope pushes a fresh frame and returns a derived context carrying it
// plus a guard that pops it:
//
//	ctx, scope := di.EnterScope(ctx)
//	defer scope.Release()
//
//	di.Provide(ctx, "config", testCfg) // shadows the outer binding
//	...                                // di.Inject(ctx, "config") sees testCfg
//
// After Release the outer binding is visible again, with no trace of the inner
// one. Scopes nest; resolution always walks innermost to outermost. Scoped
// wraps a function so every call gets its own frame:
//
//	handle := di.Scoped(func(ctx context.Context) error {
//	    di.Provide(ctx, "request_id", nextID())
//	    return process(ctx)
//	}, di.WithLabel("request"))
//
// # Flow isolation
//
// The frame stack travels in the context.Context, so each flow of control sees
// only its own scope nesting. Two goroutines entering scopes on the same
// namespace never observe each other's frames; flows that never entered a
// scope read and write the shared root frame, which is the only cross-flow
// state in the package.
//
// # Auto-injection
//
// AutoInject wraps a function so trailing parameters resolve themselves at
// call time; explicit arguments always win:
//
//	wrapped, _ := di.AutoInject(handle, di.Use("db"), di.Use("logger"))
//	_, err := wrapped(ctx, request)
//
// Fill does the same for inject-tagged struct fields:
//
//	type deps struct {
//	    DB  *sql.DB     `inject:"db"`
//	    Log *zap.Logger `inject:"logger,optional"`
//	}
//
// # Errors
//
// The one ordinary failure is NotFoundError: no active frame binds the key.
// Unknown namespaces degenerate to the same miss. Misuse — releasing a scope
// twice, a nil function handed to Scoped — panics instead: those are wiring
// bugs, not runtime conditions.
//
// Import
//
//	"github.com/sghaida/scopedi/di"
package di
