package domain

// SourceKind tags a SpecificationSource.
type SourceKind int

const (
	// SourceFile points at a Jarfile (for lock) or a lock file (for list, load and install).
	SourceFile SourceKind = iota
	// SourceInline carries a specification built in process.
	SourceInline
	// SourcePreloaded carries an already parsed lock document.
	SourcePreloaded
)

// SpecificationSource is where an operation takes its dependencies from.
type SpecificationSource struct {
	Kind          SourceKind
	Path          string
	Specification *Specification
	Document      *LockDocument
}

// FromFile returns a file-backed source.
func FromFile(path string) SpecificationSource {
	return SpecificationSource{Kind: SourceFile, Path: path}
}

// FromSpecification returns an inline source.
func FromSpecification(spec *Specification) SpecificationSource {
	return SpecificationSource{Kind: SourceInline, Specification: spec}
}

// FromDocument returns a preloaded source.
func FromDocument(doc *LockDocument) SpecificationSource {
	return SpecificationSource{Kind: SourcePreloaded, Document: doc}
}
