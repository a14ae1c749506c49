package domain

import "slices"

// Merge folds incoming into existing and returns a new document.
//
// Repositories, maps and excludes are replaced when incoming carries any.
// Each scope in incoming replaces the scope of the same name wholesale;
// scopes only in existing are kept where they were, new scopes are appended.
// Neither argument is modified.
func Merge(existing, incoming *LockDocument) *LockDocument {
	if existing == nil {
		existing = NewLockDocument()
	}
	if incoming == nil {
		return existing.Clone()
	}

	out := existing.Clone()
	if len(incoming.Repositories) > 0 {
		out.Repositories = slices.Clone(incoming.Repositories)
	}
	if len(incoming.Maps) > 0 {
		out.Maps = CloneMaps(incoming.Maps)
	}
	if len(incoming.Excludes) > 0 {
		out.Excludes = slices.Clone(incoming.Excludes)
	}
	for _, s := range incoming.Scopes {
		out.SetScope(s)
	}
	return out
}
