package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/catalogpatch/pkg/event"
)

func TestSubscribe_CountsEvents(t *testing.T) {
	d := event.New()
	Subscribe(d)
	ctx := context.Background()

	appliedBefore := testutil.ToFloat64(PatchesTotal.WithLabelValues("data", "applied"))
	failedBefore := testutil.ToFloat64(PatchesTotal.WithLabelValues("schema", "failed"))
	itemsBefore := testutil.ToFloat64(RecordsWritten.WithLabelValues("source_item"))
	linksBefore := testutil.ToFloat64(RecordsWritten.WithLabelValues("category_link"))

	d.Fire(ctx, event.PatchApplied, event.PatchPayload{Kind: "data", Duration: time.Millisecond})
	d.Fire(ctx, event.PatchFailed, event.PatchPayload{Kind: "schema"})
	d.Fire(ctx, event.SourceItemsSaved, event.SourceItemsPayload{SKUs: []string{"a"}, Count: 2})
	d.Fire(ctx, event.CategoryLinksAssigned, event.CategoryLinksPayload{SKU: "a", CategoryIDs: []uint{10, 11}})

	assert.Equal(t, appliedBefore+1, testutil.ToFloat64(PatchesTotal.WithLabelValues("data", "applied")))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(PatchesTotal.WithLabelValues("schema", "failed")))
	assert.Equal(t, itemsBefore+2, testutil.ToFloat64(RecordsWritten.WithLabelValues("source_item")))
	assert.Equal(t, linksBefore+2, testutil.ToFloat64(RecordsWritten.WithLabelValues("category_link")))
}

func TestPush(t *testing.T) {
	var gotPath string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	RecordPatch("data", "applied", time.Second)

	require.NoError(t, Push(context.Background(), srv.URL, "catalogpatch"))
	assert.Equal(t, "/metrics/job/catalogpatch", gotPath)
	assert.NotEmpty(t, gotBody)
}

func TestPush_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := Push(context.Background(), srv.URL, "catalogpatch")
	assert.ErrorContains(t, err, "metrics: push")
}
