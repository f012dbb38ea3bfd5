// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

package hyperdata

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorStatuses(t *testing.T) {
	tests := []struct {
		Err    ErrorStatus
		Status int
	}{
		{ErrUnresolvedRelation{EntityType: "order", Relation: "items"},
			http.StatusInternalServerError},
		{ErrMalformedGraph{EntityType: "order", EntityID: "1"},
			http.StatusInternalServerError},
		{ErrUnsupportedConvention{Convention: "xml"},
			http.StatusNotAcceptable},
		{ErrUnsupportedMediaType{Type: "text/html"},
			http.StatusUnsupportedMediaType},
		{ErrNotFound{Err: errors.New("gone")}, http.StatusNotFound},
		{ErrBadRequest{Err: errors.New("nope")}, http.StatusBadRequest},
	}
	for _, test := range tests {
		assert.Equal(t, test.Status, test.Err.HTTPStatus())
	}
}

func TestErrorResponseRoundTrip(t *testing.T) {
	resp := ErrorResponse{Error: "error"}
	resp.FromError(ErrUnresolvedRelation{EntityType: "order", Relation: "items"})
	assert.Equal(t, "ErrUnresolvedRelation", resp.Error)
	assert.Equal(t, "order/items", resp.Value)

	back := resp.ToError()
	_, isUnresolved := back.(ErrUnresolvedRelation)
	assert.True(t, isUnresolved)
}

func TestErrorResponseUnwrapsNotFound(t *testing.T) {
	resp := ErrorResponse{Error: "error"}
	resp.FromError(ErrNotFound{Err: ErrUnsupportedConvention{Convention: "xml"}})
	assert.Equal(t, "ErrUnsupportedConvention", resp.Error)
	assert.Equal(t, "xml", resp.Value)
}

func TestErrorResponseFallback(t *testing.T) {
	resp := ErrorResponse{Error: "error", Message: "something else"}
	resp.FromError(errors.New("something else"))
	assert.Equal(t, "error", resp.Error)
	assert.EqualError(t, resp.ToError(), "something else")
}
