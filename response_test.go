package dataverse

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/dans-knaw/go-dataverse/models"
	"github.com/dans-knaw/go-dataverse/transport"
)

func rawResponse(body string) *transport.Response {
	return &transport.Response{StatusCode: 200, Status: "200 OK", Body: []byte(body)}
}

func TestResponseDataRoundTrip(t *testing.T) {
	t.Run("struct payload", func(t *testing.T) {
		payload := models.Dataverse{Alias: "root", Name: "Root", Description: "the root"}
		data, _ := json.Marshal(payload)
		body, _ := json.Marshal(map[string]json.RawMessage{
			"status": json.RawMessage(`"OK"`),
			"data":   data,
		})

		r := NewResponse[models.Dataverse](rawResponse(string(body)))
		got, err := r.Data()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got, payload) {
			t.Errorf("round trip changed the payload: %+v", got)
		}
	})

	t.Run("list payload", func(t *testing.T) {
		r := NewResponse[[]int](rawResponse(`{"status":"OK","data":[1,2,3]}`))
		got, err := r.Data()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got, []int{1, 2, 3}) {
			t.Errorf("unexpected payload: %v", got)
		}
	})

	t.Run("primitive payload", func(t *testing.T) {
		r := NewResponse[string](rawResponse(`{"status":"OK","data":"pong"}`))
		got, err := r.Data()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "pong" {
			t.Errorf("unexpected payload: %q", got)
		}
	})

	t.Run("nested payload", func(t *testing.T) {
		body := `{"status":"OK","data":{"id":7,"latestVersion":{"versionState":"DRAFT","files":[{"label":"a.csv"}]}}}`
		r := NewResponse[models.Dataset](rawResponse(body))
		got, err := r.Data()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.LatestVersion == nil || got.LatestVersion.Files[0].Label != "a.csv" {
			t.Errorf("nested payload mismatch: %+v", got)
		}
	})
}

func TestResponseErrorEnvelopeWithMessage(t *testing.T) {
	r := NewResponse[models.Dataverse](rawResponse(`{"status":"ERROR","message":"Not found"}`))

	env, err := r.Envelope()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Status != StatusError {
		t.Errorf("expected ERROR status, got %q", env.Status)
	}
	if env.HasData() {
		t.Error("envelope should have no data")
	}

	msg, err := r.Message()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "Not found" {
		t.Errorf("expected message 'Not found', got %q", msg)
	}

	// Data is absent; asking for it is a decode error, not a crash.
	if _, err := r.Data(); !IsDecodeError(err) {
		t.Errorf("expected DecodeError for absent data, got %v", err)
	}
}

func TestResponseNullDataIsAbsent(t *testing.T) {
	r := NewResponse[models.Dataverse](rawResponse(`{"status":"OK","data":null,"message":"done"}`))
	if _, err := r.Data(); !IsDecodeError(err) {
		t.Errorf("null data must count as absent, got %v", err)
	}
}

func TestResponseMalformedJSON(t *testing.T) {
	r := NewResponse[models.Dataverse](rawResponse(`<html>not json</html>`))

	_, err := r.Envelope()
	if !IsDecodeError(err) {
		t.Fatalf("expected DecodeError, got %T: %v", err, err)
	}
	// Decode errors must never be conflated with HTTP failures.
	if transport.IsRequestFailed(err) {
		t.Error("decode error classified as request failure")
	}
}

func TestResponseShapeMismatch(t *testing.T) {
	r := NewResponse[[]int](rawResponse(`{"status":"OK","data":{"not":"a list"}}`))
	if _, err := r.Data(); !IsDecodeError(err) {
		t.Errorf("expected DecodeError for shape mismatch, got %v", err)
	}
}

func TestResponseLazyViews(t *testing.T) {
	body := `{"status":"OK","data":{"alias":"root"},"message":"hello"}`
	r := NewResponse[models.Dataverse](rawResponse(body))

	if r.String() != body {
		t.Errorf("String must return the verbatim body")
	}

	ast, err := r.JSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := ast.(map[string]any)
	if !ok || m["status"] != "OK" {
		t.Errorf("unexpected AST: %v", ast)
	}

	// Repeated access decodes once and returns the same result.
	first, err := r.Data()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := r.Data()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("cached data differs between accesses")
	}

	msg, err := r.Message()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "hello" {
		t.Errorf("unexpected message: %q", msg)
	}
	if r.StatusCode() != 200 {
		t.Errorf("unexpected status code: %d", r.StatusCode())
	}
}
