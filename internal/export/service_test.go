package export

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackzampolin/bookpress/internal/manuscript"
	"github.com/jackzampolin/bookpress/internal/render"
	"github.com/jackzampolin/bookpress/internal/render/htmlbackend"
	"github.com/jackzampolin/bookpress/internal/render/textbackend"
)

func testRegistry() *render.Registry {
	reg := render.NewRegistry()
	reg.Register(textbackend.New(render.FormatText, nil))
	reg.Register(textbackend.New(render.FormatMarkdown, nil))
	reg.Register(htmlbackend.New(nil))
	return reg
}

func testRequest(formats ...render.Format) Request {
	return Request{
		Manuscript: &manuscript.Manuscript{
			Title:  "Export Test",
			Author: "A. Writer",
			Chapters: []manuscript.Chapter{
				{Number: 1, Title: "One", Content: "Some text."},
			},
		},
		Formats: formats,
	}
}

func TestExportMultipleFormats(t *testing.T) {
	svc := NewService(testRegistry(), nil)

	outputs, err := svc.Export(context.Background(), testRequest(render.FormatText, render.FormatHTML, render.FormatMarkdown))
	if err != nil {
		t.Fatal(err)
	}
	if len(outputs) != 3 {
		t.Fatalf("outputs = %d, want 3", len(outputs))
	}
	for f, data := range outputs {
		if len(data) == 0 {
			t.Errorf("format %s produced empty output", f)
		}
	}
	if !strings.Contains(string(outputs[render.FormatHTML]), "<!DOCTYPE html>") {
		t.Error("html output malformed")
	}
}

func TestExportUnknownFormatFailsFast(t *testing.T) {
	svc := NewService(testRegistry(), nil)
	if _, err := svc.Export(context.Background(), testRequest(render.FormatPDF)); err == nil {
		t.Fatal("expected error for unregistered format")
	}
}

func TestExportInvalidManuscript(t *testing.T) {
	svc := NewService(testRegistry(), nil)
	req := testRequest(render.FormatText)
	req.Manuscript = &manuscript.Manuscript{}
	if _, err := svc.Export(context.Background(), req); err == nil {
		t.Fatal("expected error for invalid manuscript")
	}
}

func TestSubmitAndPoll(t *testing.T) {
	svc := NewService(testRegistry(), nil)

	id, err := svc.Submit(testRequest(render.FormatText))
	if err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		rec, err := svc.Get(id)
		if err != nil {
			t.Fatal(err)
		}
		if rec.Status == StatusCompleted {
			if sizes := rec.OutputSizes(); sizes[render.FormatText] == 0 {
				t.Error("completed job has no text output size")
			}
			break
		}
		if rec.Status == StatusFailed {
			t.Fatalf("job failed: %s", rec.Error)
		}
		if time.Now().After(deadline) {
			t.Fatalf("job stuck in status %s", rec.Status)
		}
		time.Sleep(10 * time.Millisecond)
	}

	data, err := svc.Result(id, render.FormatText)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("empty result")
	}
}

func TestGetUnknownJob(t *testing.T) {
	svc := NewService(testRegistry(), nil)
	if _, err := svc.Get("nope"); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("err = %v, want ErrJobNotFound", err)
	}
}

func TestSubmitValidation(t *testing.T) {
	svc := NewService(testRegistry(), nil)
	if _, err := svc.Submit(Request{Formats: []render.Format{render.FormatText}}); err == nil {
		t.Error("expected error for missing manuscript")
	}
	req := testRequest()
	if _, err := svc.Submit(req); err == nil {
		t.Error("expected error for empty formats")
	}
}

func TestListOrdering(t *testing.T) {
	svc := NewService(testRegistry(), nil)
	first, err := svc.Submit(testRequest(render.FormatText))
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	second, err := svc.Submit(testRequest(render.FormatText))
	if err != nil {
		t.Fatal(err)
	}

	jobs := svc.List()
	if len(jobs) != 2 {
		t.Fatalf("jobs = %d, want 2", len(jobs))
	}
	if jobs[0].ID != second || jobs[1].ID != first {
		t.Error("jobs not sorted newest first")
	}
}
