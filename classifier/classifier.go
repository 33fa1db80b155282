// Package classifier talks to the hosted sentiment-inference endpoint and
// turns its raw label/score answer into a tri-state decision.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-reviewbird/types"
)

const defaultEndpoint = "https://api-inference.huggingface.co/models/distilbert-base-uncased-finetuned-sst-2-english"

// decisionThreshold is a strict greater-than cutoff: a score of exactly 0.5
// is neutral on purpose.
const decisionThreshold = 0.5

type Classifier struct {
	endpoint   string
	httpClient *http.Client
}

// New builds a classifier against the given endpoint; an empty endpoint
// falls back to the hosted SST-2 model.
func New(endpoint string) *Classifier {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Classifier{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

// Classify sends text to the inference endpoint and maps the top label of
// the top result through the decision rule. The credential is attached as a
// bearer token only when non-blank. One request per call, no retries.
func (c *Classifier) Classify(ctx context.Context, text, credential string) (types.Classification, error) {
	var zero types.Classification

	payload, err := json.Marshal(inferenceRequest{Inputs: text})
	if err != nil {
		return zero, fmt.Errorf("building classification payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return zero, fmt.Errorf("building classification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if strings.TrimSpace(credential) != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("contacting classification endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("reading classification response: %w", err)
	}

	// The body is parsed as JSON even on failure statuses so the model's own
	// error message can be surfaced (e.g. "model loading" during warmup).
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fmt.Sprintf("classification endpoint returned status %d", resp.StatusCode)
		var apiBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &apiBody) == nil && apiBody.Error != "" {
			msg = apiBody.Error
		}
		return zero, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	// Expected shape: one result row per input, each row a slice of label
	// objects ordered by the model's own confidence ranking.
	var results [][]map[string]interface{}
	if err := json.Unmarshal(body, &results); err != nil {
		return zero, &ResponseShapeError{Reason: "body is not a nested result array"}
	}
	if len(results) == 0 || len(results[0]) == 0 {
		return zero, &ResponseShapeError{Reason: "no label object in first result"}
	}

	top := results[0][0]
	label, ok := top["label"].(string)
	if !ok {
		return zero, &ResponseShapeError{Reason: "label is not a string"}
	}
	score, ok := top["score"].(float64)
	if !ok {
		return zero, &ResponseShapeError{Reason: "score is not numeric"}
	}

	return types.Classification{
		RawLabel: label,
		RawScore: score,
		Decision: Decide(label, score),
	}, nil
}

// Decide maps a raw label/score pair onto the tri-state decision. The label
// comparison is case-insensitive; anything outside POSITIVE/NEGATIVE (a model
// emitting NEUTRAL directly, for instance) is neutral regardless of score.
func Decide(label string, score float64) types.Decision {
	switch strings.ToUpper(label) {
	case "POSITIVE":
		if score > decisionThreshold {
			return types.Positive
		}
	case "NEGATIVE":
		if score > decisionThreshold {
			return types.Negative
		}
	}
	return types.Neutral
}
