package validation

// ChangeFunc is called with the name of a field whose value changed.
type ChangeFunc func(field string)

// Base carries the error store and change listeners of a validatable type.
type Base struct {
	store     Store
	listeners []ChangeFunc
}

// NewBase creates a Base backed by store, or by a fresh Errors when nil
func NewBase(store Store) *Base {
	if store == nil {
		store = NewErrors()
	}
	return &Base{store: store}
}

// Validate is the base hook run before a type's own rules. It clears the
// messages of field, or of every field when field is blank.
func (b *Base) Validate(field string) {
	if IsBlank(field) {
		b.store.ClearAll()
		return
	}
	b.store.ClearErrors(field)
}

// Targets reports whether a validation run for target covers field
func Targets(target, field string) bool {
	return IsBlank(target) || target == field
}

// Store returns the underlying error store
func (b *Base) Store() Store {
	return b.store
}

// AddError records a message for field
func (b *Base) AddError(field, message string) {
	b.store.AddError(field, message)
}

// HasErrors reports whether any field has a message
func (b *Base) HasErrors() bool {
	return b.store.HasErrors()
}

// FieldErrors returns the messages recorded for field
func (b *Base) FieldErrors(field string) []string {
	return b.store.FieldErrors(field)
}

// ErrorMap returns every recorded message keyed by field
func (b *Base) ErrorMap() map[string][]string {
	out := make(map[string][]string)
	for _, field := range b.store.Fields() {
		out[field] = b.store.FieldErrors(field)
	}
	return out
}

// OnChange registers fn to be called synchronously after a field changes
func (b *Base) OnChange(fn ChangeFunc) {
	b.listeners = append(b.listeners, fn)
}

// NotifyChanged calls every registered listener with field
func (b *Base) NotifyChanged(field string) {
	for _, fn := range b.listeners {
		fn(field)
	}
}

// Set assigns v to *dst and notifies listeners when the value changed.
// It returns whether a change happened.
func Set[T comparable](b *Base, dst *T, v T, field string) bool {
	if *dst == v {
		return false
	}
	*dst = v
	b.NotifyChanged(field)
	return true
}
