package summarization

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"

	"go-reviewbird/types"
)

const maxReviewsForDigest = 40
const maxPromptLength = 12000 // Rough character limit for prompt

// GenerateReviewDigest asks OpenAI for a short digest of recently classified
// reviews. Each review line carries its derived decision so the model can
// weigh praise against complaints.
func GenerateReviewDigest(
	ctx context.Context,
	records []types.ClassificationRecord,
	openaiClient *openai.Client,
) (string, error) {
	if len(records) == 0 {
		return "", fmt.Errorf("no classified reviews to summarize")
	}

	combined := combineReviewText(records)

	log.Printf("Requesting digest from OpenAI for %d reviews...", len(records))
	return callOpenAIDigest(ctx, combined, openaiClient)
}

func combineReviewText(records []types.ClassificationRecord) string {
	var lines []string
	for i, rec := range records {
		if i >= maxReviewsForDigest {
			log.Printf("Reached max review limit (%d) for digest.", maxReviewsForDigest)
			break
		}
		if rec.Text == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("[%s] %s", rec.Decision, rec.Text))
	}

	combined := strings.Join(lines, "\n---\n")
	if len(combined) > maxPromptLength {
		log.Printf("Warning: Combined review text exceeds max length (%d), truncating.", maxPromptLength)
		combined = combined[:maxPromptLength]
	}
	return combined
}

// callOpenAIDigest sends the combined reviews to OpenAI and requests a digest.
func callOpenAIDigest(ctx context.Context, reviewText string, client *openai.Client) (string, error) {
	prompt := fmt.Sprintf("Summarize the following customer reviews. Each review is prefixed with the sentiment decision our classifier assigned to it. Focus on recurring praise, recurring complaints, and the overall customer mood. Provide a concise summary (2-3 sentences maximum):\n\n---\n%s\n---\n\nSummary:", reviewText)

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that summarizes batches of customer reviews concisely.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   150,
			N:           1,
			Temperature: 0.5, // Lower temperature for more focused summary
		},
	)

	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
