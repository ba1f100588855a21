package taxonomy

// IsIgnored reports whether a class QID disqualifies an item outright.
func IsIgnored(class uint32) bool {
	_, ok := ignoredClasses[class]
	return ok
}

// AnyIgnored reports whether any class in classes is in the ignore-set.
// It short-circuits on the first match.
func AnyIgnored(classes []uint32) bool {
	for _, c := range classes {
		if IsIgnored(c) {
			return true
		}
	}
	return false
}

// Remap returns the class a narrow/alias QID should be recorded as. Classes
// absent from the remap table are returned unchanged.
func Remap(class uint32) uint32 {
	if to, ok := classRemap[class]; ok {
		return to
	}
	return class
}

// Len reports the sizes of the ignore-set and the remap table, for
// diagnostics.
func Len() (ignored, remapped int) {
	return len(ignoredClasses), len(classRemap)
}
