package domain

// GenerateResult describes one generator run.
type GenerateResult struct {
	// Table is the validated table that was rendered.
	Table *UnitTable

	// Output is the path of the generated file.
	Output string

	// Changed is false when the file already held identical content
	// and was left untouched.
	Changed bool
}
