// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

package apiserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/isra-skyler/laravel-austin/hyperdata"
	"github.com/isra-skyler/laravel-austin/memstore"
	"github.com/isra-skyler/laravel-austin/resolver"
	"github.com/stretchr/testify/assert"
)

func testResolver(t *testing.T) *resolver.Resolver {
	res, err := resolver.New(resolver.Templates{
		"order": {
			"self":     "/orders/{id}",
			"items":    "/orders/{id}/items",
			"customer": "/orders/{id}/customer",
		},
		"item": {
			"self": "/items/{id}",
		},
		"customer": {
			"self":   "/customers/{id}",
			"orders": "/customers/{id}/orders",
		},
	})
	if err != nil {
		t.Fatalf("resolver.New() => error %v", err)
	}
	return res
}

func testStore(t *testing.T) *memstore.Store {
	intAttr := func(name string, v int64) hyperdata.Fields {
		f := hyperdata.Fields{}
		f.Set(name, hyperdata.IntValue(v))
		return f
	}
	store := memstore.New()
	store.Put("order", "1", intAttr("total", 42))
	store.Put("item", "5", intAttr("qty", 2))
	store.Put("item", "3", intAttr("qty", 1))
	store.Put("customer", "7", hyperdata.Fields{})
	steps := []error{
		store.Relate("order", "1", "items", hyperdata.ToMany,
			memstore.Ref{Type: "item", ID: "5"},
			memstore.Ref{Type: "item", ID: "3"}),
		store.Relate("order", "1", "customer", hyperdata.ToOne,
			memstore.Ref{Type: "customer", ID: "7"}),
		store.Relate("customer", "7", "orders", hyperdata.ToMany,
			memstore.Ref{Type: "order", ID: "1"}),
	}
	for _, err := range steps {
		if err != nil {
			t.Fatalf("seeding store: %v", err)
		}
	}
	return store
}

func get(t *testing.T, router http.Handler, path, accept string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestEntityGetHAL(t *testing.T) {
	router := NewRouter(testStore(t), testResolver(t))
	resp := get(t, router, "/orders/1", hyperdata.HALMediaType)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, hyperdata.HALMediaType, resp.Header().Get("Content-Type"))
	assert.Equal(t,
		`{"total":42,`+
			`"_links":{`+
			`"self":{"href":"/orders/1"},`+
			`"items":{"href":"/orders/1/items"},`+
			`"customer":{"href":"/orders/1/customer"}}}`,
		resp.Body.String())
}

func TestEntityGetGraph(t *testing.T) {
	router := NewRouter(testStore(t), testResolver(t))
	resp := get(t, router, "/orders/1", hyperdata.GraphMediaType)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, hyperdata.GraphMediaType, resp.Header().Get("Content-Type"))
	assert.Equal(t,
		`{"data":{"type":"order","id":"1","attributes":{"total":42},`+
			`"relationships":{`+
			`"items":{"links":{"related":"/orders/1/items"},`+
			`"data":[{"type":"item","id":"5"},{"type":"item","id":"3"}]},`+
			`"customer":{"links":{"related":"/orders/1/customer"},`+
			`"data":{"type":"customer","id":"7"}}}}}`,
		resp.Body.String())
}

func TestEntityGetInclude(t *testing.T) {
	router := NewRouter(testStore(t), testResolver(t))
	resp := get(t, router, "/orders/1?include=items", hyperdata.HALMediaType)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t,
		`{"total":42,`+
			`"_links":{`+
			`"self":{"href":"/orders/1"},`+
			`"items":{"href":"/orders/1/items"},`+
			`"customer":{"href":"/orders/1/customer"}},`+
			`"_embedded":{"items":[`+
			`{"qty":2,"_links":{"self":{"href":"/items/5"}}},`+
			`{"qty":1,"_links":{"self":{"href":"/items/3"}}}]}}`,
		resp.Body.String())
}

func TestEntityGetIncludeGraph(t *testing.T) {
	router := NewRouter(testStore(t), testResolver(t))
	resp := get(t, router, "/orders/1?include=items,customer", hyperdata.GraphMediaType)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t,
		`{"data":{"type":"order","id":"1","attributes":{"total":42},`+
			`"relationships":{`+
			`"items":{"links":{"related":"/orders/1/items"},`+
			`"data":[{"type":"item","id":"5"},{"type":"item","id":"3"}]},`+
			`"customer":{"links":{"related":"/orders/1/customer"},`+
			`"data":{"type":"customer","id":"7"}}}},`+
			`"included":[`+
			`{"type":"item","id":"5","attributes":{"qty":2}},`+
			`{"type":"item","id":"3","attributes":{"qty":1}},`+
			`{"type":"customer","id":"7","attributes":{}}]}`,
		resp.Body.String())
}

func TestRelatedGet(t *testing.T) {
	router := NewRouter(testStore(t), testResolver(t))
	resp := get(t, router, "/orders/1/items", hyperdata.HALMediaType)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t,
		`{"_links":{"self":{"href":"/orders/1/items"}},`+
			`"_embedded":{"items":[`+
			`{"qty":2,"_links":{"self":{"href":"/items/5"}}},`+
			`{"qty":1,"_links":{"self":{"href":"/items/3"}}}]}}`,
		resp.Body.String())
}

func TestRelatedGetToOne(t *testing.T) {
	router := NewRouter(testStore(t), testResolver(t))
	resp := get(t, router, "/orders/1/customer", hyperdata.HALMediaType)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t,
		`{"_links":{`+
			`"self":{"href":"/customers/7"},`+
			`"orders":{"href":"/customers/7/orders"}}}`,
		resp.Body.String())
}

func TestEntityNotFound(t *testing.T) {
	router := NewRouter(testStore(t), testResolver(t))
	resp := get(t, router, "/orders/99", "")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	var errResp hyperdata.ErrorResponse
	err := json.Unmarshal(resp.Body.Bytes(), &errResp)
	if assert.NoError(t, err) {
		assert.Equal(t, "error", errResp.Error)
		assert.Contains(t, errResp.Message, "order/99")
	}
}

func TestNotAcceptable(t *testing.T) {
	router := NewRouter(testStore(t), testResolver(t))
	resp := get(t, router, "/orders/1", "text/html")
	assert.Equal(t, http.StatusNotAcceptable, resp.Code)
}

func TestBadEntityID(t *testing.T) {
	// "-a" claims to be an escaped name but isn't valid base64
	router := NewRouter(testStore(t), testResolver(t))
	resp := get(t, router, "/orders/-a", "")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	router := NewRouter(testStore(t), testResolver(t))
	req := httptest.NewRequest("DELETE", "/orders/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
}

func TestHead(t *testing.T) {
	router := NewRouter(testStore(t), testResolver(t))
	req := httptest.NewRequest("HEAD", "/orders/1", nil)
	req.Header.Set("Accept", hyperdata.HALMediaType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, resp.Body.Bytes())
	assert.NotEmpty(t, resp.Header().Get("Content-Length"))
}
