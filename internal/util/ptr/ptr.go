// Package ptr provides helper functions for creating pointers to values.
package ptr

// Int64 returns a pointer to the given int64 value.
func Int64(i int64) *int64 { return &i }

// To returns a pointer to v. Used for typed string enums such as
// corev1.PersistentVolumeMode.
func To[T any](v T) *T { return &v }
