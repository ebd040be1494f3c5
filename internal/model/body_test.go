package model

import (
	"strings"
	"testing"
)

const validDescription = "A rocky world with a thin atmosphere and two small irregular moons named Phobos and Deimos."

func validCreateRequest() CreateBodyRequest {
	return CreateBodyRequest{
		Name:          "Mars",
		Type:          "Planet",
		Description:   validDescription,
		ImageURL:      "https://example.com/mars.jpg",
		DiscoveredBy:  "Ancient astronomers",
		DiscoveryDate: "Known since antiquity",
		FunFact:       "Olympus Mons is the tallest volcano in the solar system.",
	}
}

func TestCreateValidateAcceptsValidPayload(t *testing.T) {
	req := validCreateRequest()
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestCreateValidateAccumulatesAllViolations(t *testing.T) {
	req := validCreateRequest()
	req.Name = ""
	req.Description = "too short"
	req.ImageURL = "   "

	errs := req.Validate()
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(errs), errs)
	}

	// Stable order: presence checks first, then length.
	if errs[0] != "name is required" {
		t.Errorf("errs[0] = %q", errs[0])
	}
	if errs[1] != "imageUrl is required" {
		t.Errorf("errs[1] = %q", errs[1])
	}
	if !strings.Contains(errs[2], "at least 50 characters") {
		t.Errorf("errs[2] = %q", errs[2])
	}
}

func TestCreateValidateRejectsUnknownType(t *testing.T) {
	req := validCreateRequest()
	req.Type = "Star"

	errs := req.Validate()
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if errs[0] != "type must be one of: Planet, Moon, Asteroid, Dwarf Planet, Comet" {
		t.Errorf("unexpected message: %q", errs[0])
	}
}

func TestCreateValidateDescriptionLengthAfterTrim(t *testing.T) {
	req := validCreateRequest()
	// 49 significant characters padded with whitespace.
	req.Description = "   " + strings.Repeat("x", 49) + "   "

	errs := req.Validate()
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}

	req.Description = strings.Repeat("x", 50)
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors at exactly 50 chars, got %v", errs)
	}
}

func TestToBodyTrimsFields(t *testing.T) {
	req := validCreateRequest()
	req.Name = "  Mars  "
	req.DiscoveredBy = " Ancient astronomers "

	body := req.ToBody()
	if body.Name != "Mars" {
		t.Errorf("Name = %q", body.Name)
	}
	if body.DiscoveredBy != "Ancient astronomers" {
		t.Errorf("DiscoveredBy = %q", body.DiscoveredBy)
	}
	if body.Type != BodyTypePlanet {
		t.Errorf("Type = %q", body.Type)
	}
	if body.ID != "" {
		t.Errorf("ID should be unassigned, got %q", body.ID)
	}
}

func strPtr(s string) *string { return &s }

func TestUpdateValidateOnlyChecksPresentFields(t *testing.T) {
	req := UpdateBodyRequest{DiscoveredBy: strPtr("Galileo Galilei")}
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	req = UpdateBodyRequest{
		Name:        strPtr(""),
		Type:        strPtr("Nebula"),
		Description: strPtr("short"),
	}
	errs := req.Validate()
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %v", errs)
	}
	if errs[0] != "name is required" {
		t.Errorf("errs[0] = %q", errs[0])
	}
}

func TestUpdateHasFields(t *testing.T) {
	var req UpdateBodyRequest
	if req.HasFields() {
		t.Error("empty request reported fields")
	}
	req.FunFact = strPtr("It rains diamonds on Neptune, according to lab experiments.")
	if !req.HasFields() {
		t.Error("request with funFact reported no fields")
	}
}

func TestUpdateNormalizeTrims(t *testing.T) {
	req := UpdateBodyRequest{Name: strPtr("  Ceres  ")}
	req.Normalize()
	if *req.Name != "Ceres" {
		t.Errorf("Name = %q", *req.Name)
	}
}

func TestIsValidBodyType(t *testing.T) {
	for _, bt := range BodyTypes {
		if !IsValidBodyType(string(bt)) {
			t.Errorf("%q rejected", bt)
		}
	}
	for _, invalid := range []string{"planet", "Star", "", "Dwarf  Planet"} {
		if IsValidBodyType(invalid) {
			t.Errorf("%q accepted", invalid)
		}
	}
}
