package avito

import (
	"reflect"
	"weak"
)

// Object is embedded in every decoded model and every method descriptor.
// It carries a weak reference to the Client that produced (or will send)
// the value, so follow-up calls can be issued without threading the client
// through caller code. The reference never keeps the client alive.
type Object struct {
	ref weak.Pointer[Client]
}

// Bind attaches the value to c. Binding to nil detaches it.
func (o *Object) Bind(c *Client) {
	if c == nil {
		o.ref = weak.Pointer[Client]{}
		return
	}
	o.ref = weak.Make(c)
}

// Client returns the bound client, or nil when the value is unbound or the
// client has already been garbage collected.
func (o Object) Client() *Client {
	return o.ref.Value()
}

// MeID returns the account id of the bound client's cached self info.
// It reports false when the value is unbound or self info has not been
// resolved yet. It never performs I/O.
func (o Object) MeID() (int64, bool) {
	c := o.Client()
	if c == nil {
		return 0, false
	}
	return c.cachedSelfID()
}

var objectType = reflect.TypeFor[Object]()

// bindAll binds every Object reachable from v to c. v must be a pointer so
// the embedded objects are addressable.
func bindAll(c *Client, v any) {
	bindValue(c, reflect.ValueOf(v))
}

func bindValue(c *Client, v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			bindValue(c, v.Elem())
		}
	case reflect.Struct:
		if v.Type() == objectType {
			if v.CanAddr() {
				v.Addr().Interface().(*Object).Bind(c) //nolint:forcetypeassert // checked above
			}
			return
		}
		t := v.Type()
		for i := range t.NumField() {
			if !t.Field(i).IsExported() {
				continue
			}
			bindValue(c, v.Field(i))
		}
	case reflect.Slice:
		for i := range v.Len() {
			bindValue(c, v.Index(i))
		}
	case reflect.Array:
		if v.CanAddr() {
			for i := range v.Len() {
				bindValue(c, v.Index(i))
			}
		}
	case reflect.Map:
		if v.IsNil() || !mayHoldObject(v.Type().Elem()) {
			return
		}
		// Map values are not addressable: bind a copy and store it back.
		iter := v.MapRange()
		for iter.Next() {
			elem := reflect.New(iter.Value().Type()).Elem()
			elem.Set(iter.Value())
			bindValue(c, elem)
			v.SetMapIndex(iter.Key(), elem)
		}
	default:
	}
}

func mayHoldObject(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Struct, reflect.Pointer, reflect.Interface,
		reflect.Slice, reflect.Array, reflect.Map:
		return true
	default:
		return false
	}
}
