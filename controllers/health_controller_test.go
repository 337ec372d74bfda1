package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	req := require.New(t)

	rr := get(Root())

	req.Equal(http.StatusOK, rr.Code)
	req.Equal(LivenessText, rr.Body.String())
}

func TestReady(t *testing.T) {
	t.Run("ready when the store answers", func(t *testing.T) {
		req := require.New(t)
		rr := get(Ready(func(context.Context) error { return nil }))
		req.Equal(http.StatusOK, rr.Code)
	})

	t.Run("not ready when the ping fails", func(t *testing.T) {
		req := require.New(t)
		rr := get(Ready(func(context.Context) error { return errors.New("no reachable servers") }))
		req.Equal(http.StatusServiceUnavailable, rr.Code)
		req.Equal("Not Ready\n", rr.Body.String())
	})
}
