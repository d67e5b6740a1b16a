package di

import (
	"context"
	"reflect"
)

// Marker pairs a function parameter with the key that should fill it. Markers
// are built with Use and consumed only by AutoInject; they carry no value
// themselves, just the key and namespace to resolve at call time.
type Marker struct {
	key       string
	namespace string
}

// Use builds the injection marker consumed by AutoInject. The namespace
// defaults to DefaultNamespace and can be changed with In:
//
//	di.Use("db")
//	di.Use("db", di.In("replica"))
func Use(key string, opts ...Option) Marker {
	return Marker{key: key, namespace: newCallConfig(opts).namespace()}
}

// Key returns the key the marker resolves.
func (m Marker) Key() string { return m.key }

// Namespace returns the namespace the marker resolves from.
func (m Marker) Namespace() string { return m.namespace }

// AutoInject wraps fn so its trailing parameters are filled by resolution at
// call time. The markers pair with fn's last len(markers) parameters in
// declaration order. Parameter metadata is inspected once, here; key lookup
// happens on every call against the caller's context, so a call made inside a
// scope sees that scope's bindings.
//
//	openAccount := func(owner string, db *sql.DB, log *zap.Logger) error { ... }
//	wrapped, err := injector.AutoInject(openAccount, di.Use("db"), di.Use("logger"))
//	...
//	_, err = wrapped(ctx, "alice")                  // db and logger resolved
//	_, err = wrapped(ctx, "bob", replicaDB)         // explicit db wins
//
// Call-time rules:
//   - explicit arguments fill parameters left to right and always win over
//     markers for the parameters they cover
//   - a marked parameter with no explicit argument resolves its marker's key;
//     a miss fails the call with the NotFoundError Inject would return
//   - an unmarked parameter with no explicit argument fails with
//     MissingArgError
//
// If fn's first parameter is a context.Context it receives the caller's
// context and is not counted as a fillable parameter. If fn's last result is
// an error it becomes the wrapper's error result; all other results are
// returned as []any.
//
// AutoInject itself fails (with InvalidFuncError) when fn is not a function,
// is variadic, or has fewer parameters than markers.
func (in *Injector) AutoInject(fn any, markers ...Marker) (func(ctx context.Context, args ...any) ([]any, error), error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	fv := reflect.ValueOf(fn)
	meta, err := cache.funcMetaFor(fv.Type())
	if err != nil {
		return nil, err
	}
	free := len(meta.params)
	if len(markers) > free {
		return nil, InvalidFuncError{Reason: "more markers than parameters"}
	}
	firstMarked := free - len(markers)

	return func(ctx context.Context, args ...any) ([]any, error) {
		if len(args) > free {
			return nil, ArityError{Got: len(args), Max: free}
		}

		callArgs := make([]reflect.Value, 0, free+1)
		if meta.takesCtx {
			if ctx == nil {
				ctx = context.Background()
			}
			callArgs = append(callArgs, reflect.ValueOf(ctx))
		}
		for i := 0; i < free; i++ {
			want := meta.params[i]
			switch {
			case i < len(args):
				av, ok := coerce(args[i], want)
				if !ok {
					return nil, ArgTypeError{Index: i, GotType: typeName(args[i]), WantType: want.String()}
				}
				callArgs = append(callArgs, av)
			case i < firstMarked:
				return nil, MissingArgError{Index: i}
			default:
				m := markers[i-firstMarked]
				v, ok := in.resolve(ctx, m.key, m.namespace)
				if !ok {
					return nil, NotFoundError{Key: m.key, Namespace: m.namespace}
				}
				rv, ok := coerce(v, want)
				if !ok {
					return nil, WrongTypeError{Key: m.key, Namespace: m.namespace, GotType: typeName(v)}
				}
				callArgs = append(callArgs, rv)
			}
		}

		out := fv.Call(callArgs)
		results := make([]any, 0, len(out))
		var callErr error
		for i, o := range out {
			if meta.returnsErr && i == len(out)-1 {
				if !o.IsNil() {
					callErr = o.Interface().(error)
				}
				continue
			}
			results = append(results, o.Interface())
		}
		if callErr != nil {
			return nil, callErr
		}
		return results, nil
	}, nil
}

// coerce turns an untyped value into a reflect.Value assignable to want.
// nil maps to want's zero value.
func coerce(v any, want reflect.Type) (reflect.Value, bool) {
	if v == nil {
		return reflect.Zero(want), true
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(want) {
		return reflect.Value{}, false
	}
	return rv, true
}

// Fill resolves the inject-tagged exported fields of a struct in place:
//
//	type handler struct {
//	    DB  *sql.DB     `inject:"db"`
//	    Log *zap.Logger `inject:"logger,ns=observability"`
//	    Hint string     `inject:"hint,optional"`
//	    internal int    // untagged and unexported fields are left alone
//	}
//
//	h := &handler{}
//	if err := injector.Fill(ctx, h); err != nil { ... }
//
// Resolution happens per call against ctx's scope chain, exactly like Inject.
// A missing non-optional key, a value not assignable to its field, or a tag
// without a key fail with a FieldError naming the field; optional fields are
// left untouched on a miss. target must be a non-nil pointer to a struct.
func (in *Injector) Fill(ctx context.Context, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}
	elem := rv.Elem()

	for _, spec := range cache.fieldsFor(elem.Type()) {
		if spec.invalid {
			return InvalidTagError{Field: spec.name}
		}
		v, ok := in.resolve(ctx, spec.key, spec.namespace)
		if !ok {
			if spec.optional {
				continue
			}
			return FieldError{Field: spec.name, Err: NotFoundError{Key: spec.key, Namespace: spec.namespace}}
		}
		fv, ok := coerce(v, spec.typ)
		if !ok {
			return FieldError{Field: spec.name, Err: WrongTypeError{Key: spec.key, Namespace: spec.namespace, GotType: typeName(v)}}
		}
		elem.Field(spec.index).Set(fv)
	}
	return nil
}
