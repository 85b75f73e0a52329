// Package mocks provides hand-written mocks shared by the test suites.
//
// Each mock has one function field per interface method. A nil field falls
// back to a default: MockTaskService returns its Task, Tasks and DefaultError
// fields, and MockCache behaves as an in-memory cache that records calls.
//
//	svc := &mocks.MockTaskService{
//	    GetTaskFn: func(ctx context.Context, id int64) (*domain.Task, service.Provenance, error) {
//	        return &domain.Task{ID: id, Text: "Buy milk"}, service.ProvenanceCache, nil
//	    },
//	}
package mocks
