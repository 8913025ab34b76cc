// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package validation

import (
	"strings"
	"testing"

	"github.com/tomtom215/homeshelf/internal/models"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

func TestIsJellyfinID(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"0f6e0f7a1b2c4d3e8f9a0b1c2d3e4f50", true},
		{"0f6e0f7a-1b2c-4d3e-8f9a-0b1c2d3e4f50", true},
		{"0F6E0F7A1B2C4D3E8F9A0B1C2D3E4F50", true},
		{"00000000000000000000000000000000", false},
		{"00000000-0000-0000-0000-000000000000", false},
		{"", false},
		{"alice", false},
		{"0f6e0f7a1b2c4d3e8f9a0b1c2d3e4f5", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsJellyfinID(tt.input); got != tt.want {
				t.Errorf("IsJellyfinID(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateSectionPayload(t *testing.T) {
	tests := []struct {
		name      string
		payload   models.SectionPayload
		wantValid bool
		wantField string
	}{
		{
			name:      "valid",
			payload:   models.SectionPayload{UserID: "0f6e0f7a1b2c4d3e8f9a0b1c2d3e4f50", AdditionalData: "section"},
			wantValid: true,
		},
		{
			name:      "nil user",
			payload:   models.SectionPayload{UserID: "00000000-0000-0000-0000-000000000000", AdditionalData: "section"},
			wantField: "UserId",
		},
		{
			name:      "missing user",
			payload:   models.SectionPayload{AdditionalData: "section"},
			wantField: "UserId",
		},
		{
			name:      "missing additional data",
			payload:   models.SectionPayload{UserID: "0f6e0f7a1b2c4d3e8f9a0b1c2d3e4f50"},
			wantField: "AdditionalData",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.payload)
			if tt.wantValid {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if got := err.Errors()[0].Field(); got != tt.wantField {
				t.Errorf("field = %q, want %q", got, tt.wantField)
			}
		})
	}
}

type sortHolder struct {
	SortBy string `json:"sort_by" validate:"sort_key"`
}

func TestSortKeyValidator(t *testing.T) {
	for _, ok := range []string{"", "Name", "random", "DatePlayed"} {
		if err := ValidateStruct(&sortHolder{SortBy: ok}); err != nil {
			t.Errorf("sort_by %q rejected: %v", ok, err)
		}
	}
	err := ValidateStruct(&sortHolder{SortBy: "Rating"})
	if err == nil {
		t.Fatal("expected Rating to be rejected")
	}
	if !strings.Contains(err.Error(), "sort_by must be one of") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

type multiField struct {
	Name  string `json:"name" validate:"required,max=5"`
	Limit int    `json:"limit" validate:"min=1,max=100"`
}

func TestToAPIError(t *testing.T) {
	single := ValidateStruct(&multiField{Name: "abc", Limit: 0})
	if single == nil {
		t.Fatal("expected error")
	}
	apiErr := single.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q", apiErr.Code)
	}
	if apiErr.Message != "limit must be at least 1" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "limit" {
		t.Errorf("Details = %v", apiErr.Details)
	}

	multi := ValidateStruct(&multiField{Name: "toolongname", Limit: 500})
	if multi == nil {
		t.Fatal("expected error")
	}
	apiErr = multi.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("expected 2 field entries, got %v", apiErr.Details)
	}
	if !strings.Contains(apiErr.Message, "name must be at most 5 characters") {
		t.Errorf("Message = %q", apiErr.Message)
	}

	empty := &RequestValidationError{}
	if empty.ToAPIError().Message != "Validation failed" {
		t.Error("empty error should have generic message")
	}
}
