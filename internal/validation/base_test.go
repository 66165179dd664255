package validation

import (
	"reflect"
	"testing"
)

func TestErrors_AddAndClear(t *testing.T) {
	e := NewErrors()
	if e.HasErrors() {
		t.Fatal("new store should be empty")
	}

	e.AddError("urls", "bad url")
	e.AddError("channel", "missing")
	e.AddError("urls", "second")

	if !e.HasErrors() {
		t.Fatal("expected errors after AddError")
	}
	if got, want := e.Fields(), []string{"urls", "channel"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}
	if got, want := e.FieldErrors("urls"), []string{"bad url", "second"}; !reflect.DeepEqual(got, want) {
		t.Errorf("FieldErrors(urls) = %v, want %v", got, want)
	}

	e.ClearErrors("urls")
	if got := e.FieldErrors("urls"); got != nil {
		t.Errorf("FieldErrors(urls) after clear = %v, want nil", got)
	}
	if got, want := e.Fields(), []string{"channel"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() after clear = %v, want %v", got, want)
	}

	e.ClearErrors("unknown")
	e.ClearAll()
	if e.HasErrors() {
		t.Error("expected no errors after ClearAll")
	}
}

func TestErrors_FieldErrorsIsCopy(t *testing.T) {
	e := NewErrors()
	e.AddError("ids", "bad")

	msgs := e.FieldErrors("ids")
	msgs[0] = "changed"

	if got := e.FieldErrors("ids")[0]; got != "bad" {
		t.Errorf("store was mutated through returned slice: %q", got)
	}
}

func TestBase_Validate(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantFields []string
	}{
		{"all", "", []string{}},
		{"whitespace means all", "  ", []string{}},
		{"single field", "urls", []string{"channel"}},
		{"unrelated field", "ids", []string{"urls", "channel"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBase(nil)
			b.AddError("urls", "bad")
			b.AddError("channel", "missing")

			b.Validate(tt.target)

			if got := b.Store().Fields(); !reflect.DeepEqual(got, tt.wantFields) {
				t.Errorf("Fields() = %v, want %v", got, tt.wantFields)
			}
		})
	}
}

func TestTargets(t *testing.T) {
	tests := []struct {
		target string
		field  string
		want   bool
	}{
		{"", "channel", true},
		{" ", "channel", true},
		{"channel", "channel", true},
		{"urls", "channel", false},
	}

	for _, tt := range tests {
		if got := Targets(tt.target, tt.field); got != tt.want {
			t.Errorf("Targets(%q, %q) = %v, want %v", tt.target, tt.field, got, tt.want)
		}
	}
}

func TestSet_NotifiesOnChange(t *testing.T) {
	b := NewBase(nil)

	var changed []string
	b.OnChange(func(field string) {
		changed = append(changed, field)
	})

	value := "a"
	if Set(b, &value, "a", "channel") {
		t.Error("Set with the same value should report no change")
	}
	if !Set(b, &value, "b", "channel") {
		t.Error("Set with a new value should report a change")
	}
	if value != "b" {
		t.Errorf("value = %q, want b", value)
	}

	if want := []string{"channel"}; !reflect.DeepEqual(changed, want) {
		t.Errorf("notifications = %v, want %v", changed, want)
	}
}

func TestBase_ErrorMap(t *testing.T) {
	b := NewBase(NewErrors())
	b.AddError("ids", "One or more IDs are invalid!")

	want := map[string][]string{"ids": {"One or more IDs are invalid!"}}
	if got := b.ErrorMap(); !reflect.DeepEqual(got, want) {
		t.Errorf("ErrorMap() = %v, want %v", got, want)
	}
}
