// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

package validation

import (
	"strings"
	"testing"

	"github.com/tastewarp/tastewarp/internal/models"
)

func validRequest() models.WarpRequest {
	return models.WarpRequest{
		Entities:   []models.SeedEntity{{ID: "e1", Name: "Radiohead", Type: "urn:entity:artist"}},
		TargetYear: 1965,
		UserName:   "Ada",
	}
}

func TestValidateStructOK(t *testing.T) {
	t.Parallel()

	if verr := ValidateStruct(validRequest()); verr != nil {
		t.Errorf("valid request rejected: %v", verr)
	}

	anon := validRequest()
	anon.UserName = ""
	if verr := ValidateStruct(anon); verr != nil {
		t.Errorf("anonymous request rejected: %v", verr)
	}
}

func TestValidateStructFieldErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*models.WarpRequest)
		wantField string
	}{
		{"no entities", func(r *models.WarpRequest) { r.Entities = nil }, "Entities"},
		{"empty entities", func(r *models.WarpRequest) { r.Entities = []models.SeedEntity{} }, "Entities"},
		{"too many entities", func(r *models.WarpRequest) {
			r.Entities = make([]models.SeedEntity, 6)
		}, "Entities"},
		{"year zero", func(r *models.WarpRequest) { r.TargetYear = 0 }, "TargetYear"},
		{"year too early", func(r *models.WarpRequest) { r.TargetYear = 1899 }, "TargetYear"},
		{"year too late", func(r *models.WarpRequest) { r.TargetYear = 2026 }, "TargetYear"},
		{"name too long", func(r *models.WarpRequest) {
			r.UserName = strings.Repeat("a", 101)
		}, "UserName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := validRequest()
			tt.mutate(&req)

			verr := ValidateStruct(req)
			if verr == nil {
				t.Fatal("invalid request accepted")
			}
			if !verr.HasField(tt.wantField) {
				t.Errorf("HasField(%q) = false, fields = %+v", tt.wantField, verr.Fields())
			}
			if verr.Error() == "" {
				t.Error("StructError.Error() is empty")
			}
		})
	}
}

func TestValidateStructBoundaryYears(t *testing.T) {
	t.Parallel()

	for _, year := range []int{1900, 2025} {
		req := validRequest()
		req.TargetYear = year
		if verr := ValidateStruct(req); verr != nil {
			t.Errorf("year %d rejected: %v", year, verr)
		}
	}
}

func TestValidateStructNonStruct(t *testing.T) {
	t.Parallel()

	if verr := ValidateStruct(42); verr == nil {
		t.Error("non-struct value accepted")
	}
}
