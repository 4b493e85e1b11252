package util

func StringPtr(v string) *string {
	return &v
}

func FloatPtr(v float64) *float64 {
	return &v
}

func IntPtr(v int) *int {
	return &v
}

func BoolPtr(v bool) *bool {
	return &v
}

// Deref returns the zero value for nil.
func Deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
