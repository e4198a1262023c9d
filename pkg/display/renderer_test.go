package display

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/isaacfidler/cratedig/pkg/reconcile"
)

func plainRenderer() *Renderer {
	return &Renderer{rich: false}
}

func TestRenderReport(t *testing.T) {
	r := plainRenderer()

	out := r.RenderReport(reconcile.Report{
		Scanned:  42,
		Created:  10,
		Removed:  3,
		Duration: 2 * time.Second,
	})
	assert.Contains(t, out, "42 scanned")
	assert.Contains(t, out, "10 links created")
	assert.Contains(t, out, "3 removed")
	assert.NotContains(t, out, "failed")
	assert.NotContains(t, out, "dry run")
}

func TestRenderReportDryRun(t *testing.T) {
	r := plainRenderer()

	out := r.RenderReport(reconcile.Report{DryRun: true, Scanned: 5, Created: 5})
	assert.Contains(t, out, "[dry run]")
}

func TestRenderReportFailures(t *testing.T) {
	r := plainRenderer()

	out := r.RenderReport(reconcile.Report{
		Scanned: 2,
		Created: 1,
		Failed:  1,
		Errors:  []error{errors.New("symlink exists")},
	})
	assert.Contains(t, out, "1 failed")
	assert.Contains(t, out, "symlink exists")
}

func TestRenderStats(t *testing.T) {
	r := plainRenderer()

	out := r.RenderStats(reconcile.Stats{
		TotalSources: 7,
		Categories: []reconcile.CategoryCount{
			{Category: "All", Count: 7},
			{Category: "Genres/Electronic/House", Count: 2},
			{Category: "One_Shots/Kicks", Count: 4},
		},
	})
	assert.Contains(t, out, "Tracked samples: 7")
	assert.Contains(t, out, "All")
	assert.Contains(t, out, "Electronic/House")
	assert.Contains(t, out, "Kicks")
}

func TestRenderError(t *testing.T) {
	r := plainRenderer()
	assert.Equal(t, "Error: boom", r.RenderError(errors.New("boom")))
}
