package domain

import "strings"

// CoalesceStr returns the first non-blank string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// IntFromPtrWithDefault returns the first non-nil *int value, or the fallback.
func IntFromPtrWithDefault(fallback int, ptrs ...*int) int {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// Int64FromPtrWithDefault returns the first non-nil *int64 value, or the fallback.
func Int64FromPtrWithDefault(fallback int64, ptrs ...*int64) int64 {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// Patch copies *src into *dst when src is non-nil.
func Patch[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// PatchPtr replaces *dst with a copy of src when src is non-nil.
// Used for optional columns such as due dates.
func PatchPtr[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

// PatchNonBlank copies *src into *dst when src is non-nil and not blank.
func PatchNonBlank(dst *string, src *string) {
	if src != nil && strings.TrimSpace(*src) != "" {
		*dst = *src
	}
}
