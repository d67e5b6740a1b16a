package di

// callConfig collects the per-call settings shared by Provide, Inject,
// EnterScope, Use, and friends.
type callConfig struct {
	namespaces []string
	label      string
}

// Option configures a single call. Options are small and composable on
// purpose: the zero configuration (default namespace, no label) is the common
// case and needs no option at all.
type Option func(*callConfig)

// In targets a call at a namespace other than DefaultNamespace.
//
// For EnterScope, In may be repeated to restrict the scope to several
// namespaces; a scope with no In covers every namespace touched within it.
// For Provide, Inject, Update, and Use only the last In wins.
func In(namespace string) Option {
	return func(c *callConfig) { c.namespaces = append(c.namespaces, namespace) }
}

// WithLabel attaches a diagnostic label to a scope. The label has no effect on
// resolution; it only shows up in panic messages and String output.
func WithLabel(label string) Option {
	return func(c *callConfig) { c.label = label }
}

func newCallConfig(opts []Option) callConfig {
	var c callConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// namespace returns the effective single namespace for non-scope calls.
func (c callConfig) namespace() string {
	if len(c.namespaces) == 0 {
		return DefaultNamespace
	}
	return c.namespaces[len(c.namespaces)-1]
}
