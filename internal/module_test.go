package internal_test

import (
	"testing"

	src "github.com/dashline-io/dashline/internal"
)

func TestModuleName(t *testing.T) {
	if src.ProjectName() != "dashline" {
		t.Errorf("Project name `%s` incorrect", src.ProjectName())
	}
}
