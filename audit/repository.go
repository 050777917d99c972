// audit/repository.go
package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"

	"github.com/pcbinspect/client/db"
	logger "github.com/pcbinspect/client/logging"
)

type Repository interface {
	LogAction(ctx context.Context, log AuditLog) error
	QueryLogs(ctx context.Context, from, to time.Time, userID int, resourceID string) ([]AuditLog, error)
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
	return &ElasticsearchRepository{esClient: esClient, index: index}, nil
}

// LogAction indexes one audit entry.
func (r *ElasticsearchRepository) LogAction(ctx context.Context, log AuditLog) error {
	data, err := json.Marshal(log)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: log.ID,
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, r.esClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source AuditLog `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// QueryLogs searches within a time frame and optionally filters by user and resource.
func (r *ElasticsearchRepository) QueryLogs(ctx context.Context, from, to time.Time, userID int, resourceID string) ([]AuditLog, error) {
	must := []interface{}{
		map[string]interface{}{
			"range": map[string]interface{}{
				"timestamp": map[string]interface{}{
					"gte": from.Format(time.RFC3339),
					"lte": to.Format(time.RFC3339),
				},
			},
		},
	}
	if userID != 0 {
		must = append(must, map[string]interface{}{
			"term": map[string]interface{}{"user_id": userID},
		})
	}
	if resourceID != "" {
		must = append(must, map[string]interface{}{
			"match": map[string]interface{}{"resource_id": resourceID},
		})
	}

	var buf strings.Builder
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{"must": must},
		},
		"sort": []interface{}{
			map[string]interface{}{"timestamp": "asc"},
		},
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
		return nil, fmt.Errorf("error searching documents: %s", res.String())
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, err
	}

	logs := make([]AuditLog, 0, len(sr.Hits.Hits))
	for _, hit := range sr.Hits.Hits {
		logs = append(logs, hit.Source)
	}
	return logs, nil
}

// maxStoredLogs bounds the audit trail kept in the client store.
const maxStoredLogs = 1000

// LogRepository writes audit entries to the application log and keeps them in
// the client store under db.KeyAuditLog, so later invocations can query them.
type LogRepository struct {
	mu    sync.Mutex
	store db.Store
}

func NewLogRepository(store db.Store) *LogRepository {
	return &LogRepository{store: store}
}

func (r *LogRepository) LogAction(ctx context.Context, log AuditLog) error {
	logger.Info("AUDIT",
		zap.String("id", log.ID),
		zap.Int("userID", log.UserID),
		zap.String("userRole", log.UserRole),
		zap.String("action", log.Action),
		zap.String("resourceID", log.ResourceID),
		zap.ByteString("details", log.ChangeDetails))

	r.mu.Lock()
	defer r.mu.Unlock()

	logs, err := r.load(ctx)
	if err != nil {
		logger.Warn("Discarding unreadable audit trail", zap.Error(err))
		logs = nil
	}
	logs = append(logs, log)
	if len(logs) > maxStoredLogs {
		logs = logs[len(logs)-maxStoredLogs:]
	}

	raw, err := json.Marshal(logs)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, db.KeyAuditLog, string(raw))
}

func (r *LogRepository) QueryLogs(ctx context.Context, from, to time.Time, userID int, resourceID string) ([]AuditLog, error) {
	r.mu.Lock()
	logs, err := r.load(ctx)
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	var out []AuditLog
	for _, l := range logs {
		if l.Timestamp.Before(from) || l.Timestamp.After(to) {
			continue
		}
		if userID != 0 && l.UserID != userID {
			continue
		}
		if resourceID != "" && l.ResourceID != resourceID {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *LogRepository) load(ctx context.Context) ([]AuditLog, error) {
	raw, ok, err := r.store.Get(ctx, db.KeyAuditLog)
	if err != nil || !ok || raw == "" {
		return nil, err
	}
	var logs []AuditLog
	if err := json.Unmarshal([]byte(raw), &logs); err != nil {
		return nil, fmt.Errorf("failed to decode audit trail: %w", err)
	}
	return logs, nil
}
