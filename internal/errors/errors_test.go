package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := NewCaseNotFound("atl-l-002794-25")
	want := "CASE_NOT_FOUND: case not found: atl-l-002794-25"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Details["slug"] != "atl-l-002794-25" {
		t.Errorf("Details[slug] = %v, want atl-l-002794-25", err.Details["slug"])
	}
}

func TestIs(t *testing.T) {
	if !Is(NewInvalidRequest("bad"), ErrInvalidRequest) {
		t.Error("Is should match same code")
	}
	if Is(NewInvalidRequest("bad"), ErrInternal) {
		t.Error("Is should not match different code")
	}
	if Is(stderrors.New("plain"), ErrInternal) {
		t.Error("Is should not match non-docketfold error")
	}
	if Is(nil, ErrInternal) {
		t.Error("Is should not match nil")
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := NewInternal(fmt.Errorf("writing docket: %w", cause))
	if !stderrors.Is(err, cause) {
		t.Error("Unwrap chain should reach the original cause")
	}
}

func TestNewInternalNilCause(t *testing.T) {
	err := NewInternal(nil)
	if !strings.Contains(err.Error(), "internal error") {
		t.Errorf("Error() = %q, want generic internal message", err.Error())
	}
}

func TestMetadataInvalidIsNonFatalCode(t *testing.T) {
	err := NewMetadataInvalid("/content/cases/x/index.md", stderrors.New("bad yaml"))
	if !Is(err, ErrMetadataInvalid) {
		t.Error("expected METADATA_INVALID code")
	}
	if err.Details["path"] != "/content/cases/x/index.md" {
		t.Errorf("Details[path] = %v", err.Details["path"])
	}
}
