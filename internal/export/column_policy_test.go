package export

import (
	"reflect"
	"testing"

	"mediasearch-srv/pkg/providers"
)

func TestColumnPolicyHeaderSorted(t *testing.T) {
	policy := NewColumnPolicy(providers.Story{
		"url":          "http://example.com",
		"id":           "1",
		"publish_date": "2024-01-02",
		"language":     "en",
	})

	want := []string{"id", "language", "publish_date", "url"}
	if !reflect.DeepEqual(policy.Header(), want) {
		t.Errorf("header = %v, want %v", policy.Header(), want)
	}
}

func TestColumnPolicyMissingFieldsRenderEmpty(t *testing.T) {
	policy := NewColumnPolicy(providers.Story{"id": "1", "title": "first", "url": "u"})

	row := policy.Project(providers.Story{"id": "2", "url": "v"})
	want := []string{"2", "", "v"}
	if !reflect.DeepEqual(row, want) {
		t.Errorf("row = %v, want %v", row, want)
	}
}

func TestColumnPolicyExtraFieldsDropped(t *testing.T) {
	policy := NewColumnPolicy(providers.Story{"id": "1", "title": "first"})

	row := policy.Project(providers.Story{
		"id":        "2",
		"title":     "second",
		"subreddit": "news",
		"score":     float64(42),
	})
	want := []string{"2", "second"}
	if !reflect.DeepEqual(row, want) {
		t.Errorf("row = %v, want %v", row, want)
	}
}

func TestColumnPolicyRendersJSONNumbers(t *testing.T) {
	policy := NewColumnPolicy(providers.Story{"score": float64(42), "ratio": 0.25})

	row := policy.Project(providers.Story{"score": float64(42), "ratio": 0.25})
	// header sorted: ratio, score
	want := []string{"0.25", "42"}
	if !reflect.DeepEqual(row, want) {
		t.Errorf("row = %v, want %v", row, want)
	}
}
