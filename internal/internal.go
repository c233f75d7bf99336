package internal

// ProjectName returns the canonical name of this project.
func ProjectName() string {
	return "dashline"
}
