package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveSubmission(t *testing.T) {
	before := testutil.ToFloat64(submissions.WithLabelValues("classroom", OutcomeFailed))

	ObserveSubmission("classroom", OutcomeFailed)
	ObserveSubmission("classroom", OutcomeFailed)

	after := testutil.ToFloat64(submissions.WithLabelValues("classroom", OutcomeFailed))
	assert.Equal(t, before+2, after)
}

func TestObserveSideChannelError(t *testing.T) {
	before := testutil.ToFloat64(sideChannelErrors.WithLabelValues("nats"))
	ObserveSideChannelError("nats")
	assert.Equal(t, before+1, testutil.ToFloat64(sideChannelErrors.WithLabelValues("nats")))
}
