package di

import (
	"context"
	"reflect"
	"strings"
	"sync"
)

// Reflection over wrapped functions and Fill targets happens once per type.
// AutoInject inspects at wrap time; Fill inspects on first use of a struct
// type. Either way the metadata is immutable afterwards and shared by every
// injector in the process.

var (
	ctxType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errType = reflect.TypeOf((*error)(nil)).Elem()
)

// funcMeta is the wrap-time view of an auto-injectable function.
type funcMeta struct {
	takesCtx   bool
	returnsErr bool

	// params are the declared parameter types minus a leading context.Context.
	params []reflect.Type
}

// fieldSpec is the parsed inject tag of one exported struct field.
type fieldSpec struct {
	index     int
	name      string
	typ       reflect.Type
	key       string
	namespace string
	optional  bool

	// invalid marks a tag with no key; surfaced as InvalidTagError on Fill.
	invalid bool
}

type reflectCache struct {
	mu     sync.RWMutex
	funcs  map[reflect.Type]*funcMeta
	fields map[reflect.Type][]fieldSpec
}

var cache = &reflectCache{
	funcs:  map[reflect.Type]*funcMeta{},
	fields: map[reflect.Type][]fieldSpec{},
}

// funcMetaFor retrieves or computes the parameter metadata for fn's type.
func (rc *reflectCache) funcMetaFor(t reflect.Type) (*funcMeta, error) {
	rc.mu.RLock()
	meta, ok := rc.funcs[t]
	rc.mu.RUnlock()
	if ok {
		return meta, nil
	}

	if t.Kind() != reflect.Func {
		return nil, InvalidFuncError{Reason: "not a function (" + t.String() + ")"}
	}
	if t.IsVariadic() {
		return nil, InvalidFuncError{Reason: "variadic functions are not supported"}
	}

	meta = &funcMeta{}
	for i := 0; i < t.NumIn(); i++ {
		p := t.In(i)
		if i == 0 && p == ctxType {
			meta.takesCtx = true
			continue
		}
		meta.params = append(meta.params, p)
	}
	if n := t.NumOut(); n > 0 && t.Out(n-1) == errType {
		meta.returnsErr = true
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()
	// Another flow may have raced the computation; the results are identical,
	// keep whichever landed first.
	if existing, ok := rc.funcs[t]; ok {
		return existing, nil
	}
	rc.funcs[t] = meta
	return meta, nil
}

// fieldsFor retrieves or computes the inject-tagged fields of a struct type.
func (rc *reflectCache) fieldsFor(t reflect.Type) []fieldSpec {
	rc.mu.RLock()
	specs, ok := rc.fields[t]
	rc.mu.RUnlock()
	if ok {
		return specs
	}

	specs = []fieldSpec{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag, tagged := f.Tag.Lookup("inject")
		if !tagged || tag == "-" || f.PkgPath != "" {
			continue
		}
		specs = append(specs, parseInjectTag(i, f, tag))
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()
	if existing, ok := rc.fields[t]; ok {
		return existing
	}
	rc.fields[t] = specs
	return specs
}

// parseInjectTag parses an inject struct tag.
// Supported formats:
//   - `inject:"key"` — resolve key from the default namespace
//   - `inject:"key,ns=other"` — resolve key from namespace other
//   - `inject:"key,optional"` — leave the field untouched when key is unbound
//   - `inject:"-"` — never touched by Fill (handled by the caller)
func parseInjectTag(index int, f reflect.StructField, tag string) fieldSpec {
	spec := fieldSpec{
		index:     index,
		name:      f.Name,
		typ:       f.Type,
		namespace: DefaultNamespace,
	}

	parts := strings.Split(tag, ",")
	spec.key = strings.TrimSpace(parts[0])
	if spec.key == "" {
		spec.invalid = true
		return spec
	}

	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		switch {
		case part == "optional":
			spec.optional = true
		case strings.HasPrefix(part, "ns="):
			spec.namespace = strings.TrimPrefix(part, "ns=")
		}
	}
	return spec
}
