package dto

import (
	"testing"

	"github.com/taskdesk/backend/internal/domain"
)

func TestCreateTaskRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateTaskRequest
		wantErr bool
	}{
		{"valid with status", CreateTaskRequest{Title: "write spec", Status: "inprogress"}, false},
		{"valid without status", CreateTaskRequest{Title: "write spec"}, false},
		{"missing title", CreateTaskRequest{Status: "assigned"}, true},
		{"bad status", CreateTaskRequest{Title: "x", Status: "done"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestCreateTaskRequestGetStatus(t *testing.T) {
	req := CreateTaskRequest{Title: "x"}
	if got := req.GetStatus(); got != domain.TaskStatusAssigned {
		t.Errorf("omitted status should default to assigned, got %q", got)
	}

	req.Status = "completed"
	if got := req.GetStatus(); got != domain.TaskStatusCompleted {
		t.Errorf("GetStatus() = %q, want completed", got)
	}
}

func TestUpdateTaskRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     UpdateTaskRequest
		wantErr bool
	}{
		{"valid", UpdateTaskRequest{Title: "x", Status: "completed"}, false},
		{"missing title", UpdateTaskRequest{Status: "completed"}, true},
		{"missing status", UpdateTaskRequest{Title: "x"}, true},
		{"bad status", UpdateTaskRequest{Title: "x", Status: "todo"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}
