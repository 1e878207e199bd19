package service_test

import (
	"errors"
	"testing"

	"github.com/studiva/studiva-backend/internal/apperror"
	"github.com/studiva/studiva-backend/internal/service"
)

func TestListModules(t *testing.T) {
	f := newFixture()
	svc := service.NewCatalogService(f.catalog)

	modules, err := svc.ListModules()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(modules))
	}
	if modules[0].Title != "Algebra" || len(modules[0].Materials) != 2 {
		t.Fatalf("unexpected first module: %+v", modules[0])
	}
	if modules[0].Challenges[0].QuestionCount != 2 {
		t.Fatalf("expected question count 2, got %d", modules[0].Challenges[0].QuestionCount)
	}
	// The bulk read carries candidate answers, same as the single-module read.
	q := modules[0].Challenges[0].Questions[0]
	if len(q.Answers) != 2 {
		t.Fatalf("expected 2 candidate answers in bulk listing, got %d", len(q.Answers))
	}
}

func TestGetModule(t *testing.T) {
	f := newFixture()
	svc := service.NewCatalogService(f.catalog)

	module, err := svc.GetModule(2)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if module.Title != "Geometry" || module.Challenges[0].QuestionCount != 1 {
		t.Fatalf("unexpected module: %+v", module)
	}

	if _, err := svc.GetModule(999); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
