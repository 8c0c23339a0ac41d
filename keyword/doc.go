// Package keyword substitutes {keyword} placeholders in status templates.
// Substitute applies an ordered list of bindings using containment
// matching: a placeholder is claimed by every keyword its text contains,
// which lets decorated placeholders such as {[isNoFail]} disappear
// entirely when their value is empty. Engine selects between that
// matcher and an exact matcher built on valyala/fasttemplate.
package keyword
