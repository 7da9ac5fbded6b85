// audit/repository.go
package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// Repository is insert-only: there is no update or delete.
type Repository interface {
	Append(ctx context.Context, entry Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

type ElasticsearchRepository struct {
	esClient *elasticsearch.Client
	index    string
}

// NewElasticsearchRepository creates a new repository with a given Elasticsearch client URL.
func NewElasticsearchRepository(esURL, index string) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{esURL},
	}
	esClient, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	if index == "" {
		index = "audit-logs"
	}
	return &ElasticsearchRepository{esClient: esClient, index: index}, nil
}

// Append indexes the entry under its id with op_type=create, so an id can
// never be overwritten.
func (r *ElasticsearchRepository) Append(ctx context.Context, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: entry.ID,
		Body:       bytes.NewReader(data),
		OpType:     "create",
		Refresh:    "true",
	}

	res, err := req.Do(ctx, r.esClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing audit entry: %s", res.String())
	}

	return nil
}

// Recent returns the newest entries first.
func (r *ElasticsearchRepository) Recent(ctx context.Context, limit int) ([]Entry, error) {
	var buf strings.Builder
	query := map[string]any{
		"size": limit,
		"sort": []any{
			map[string]any{"created_at": map[string]any{"order": "desc"}},
		},
		"query": map[string]any{"match_all": map[string]any{}},
	}
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, err
	}

	res, err := r.esClient.Search(
		r.esClient.Search.WithContext(ctx),
		r.esClient.Search.WithIndex(r.index),
		r.esClient.Search.WithBody(strings.NewReader(buf.String())),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching audit entries: %s", res.String())
	}

	var body struct {
		Hits struct {
			Hits []struct {
				Source Entry `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(body.Hits.Hits))
	for _, hit := range body.Hits.Hits {
		entries = append(entries, hit.Source)
	}
	return entries, nil
}
