package model

// Object is a decoded JSON object from the Jira API.
// Every accessor tolerates a nil receiver, a missing key and a value of the
// wrong type by returning nil, so partial responses never panic.
type Object map[string]any

// AsObject converts a decoded JSON value to an Object, or nil if it is not an object.
func AsObject(v any) Object {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return Object(m)
}

// Obj returns the nested object under key.
func (o Object) Obj(key string) Object {
	return AsObject(o[key])
}

// Str returns the string under key.
func (o Object) Str(key string) *string {
	s, ok := o[key].(string)
	if !ok {
		return nil
	}
	return &s
}

// Int returns the number under key truncated to an int.
func (o Object) Int(key string) *int {
	f, ok := o[key].(float64)
	if !ok {
		return nil
	}
	i := int(f)
	return &i
}

// Bool returns the boolean under key.
func (o Object) Bool(key string) *bool {
	b, ok := o[key].(bool)
	if !ok {
		return nil
	}
	return &b
}

// Scalar returns a string, number or boolean under key as-is.
func (o Object) Scalar(key string) any {
	switch v := o[key].(type) {
	case string, float64, bool:
		return v
	default:
		return nil
	}
}

// List returns the array under key.
func (o Object) List(key string) []any {
	l, _ := o[key].([]any)
	return l
}

// NestedStr returns o[key][field] when o[key] is an object.
func (o Object) NestedStr(key, field string) *string {
	return o.Obj(key).Str(field)
}
