// Package gemini is a thin client for the hosted generative-language API.
// Every helper degrades on failure: empty slices or placeholder strings,
// never an error the caller has to treat as fatal.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.0-flash"

	requestTimeout = 30 * time.Second
)

// Client calls the generateContent endpoint of a generative-language model.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewClient creates a client. When accessToken is set, requests carry an
// OAuth2 bearer token; otherwise the API key is sent as a query parameter.
func NewClient(apiKey, accessToken, model string) *Client {
	httpClient := &http.Client{Timeout: requestTimeout}
	if accessToken != "" {
		httpClient = oauth2.NewClient(context.Background(),
			oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))
		httpClient.Timeout = requestTimeout
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

// --- wire types ---

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
	Tools            []tool            `json:"tools,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type tool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
}

// schema is the subset of the response-schema language the prompts need.
type schema struct {
	Type       string             `json:"type"`
	Items      *schema            `json:"items,omitempty"`
	Properties map[string]*schema `json:"properties,omitempty"`
	Enum       []string           `json:"enum,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content           content            `json:"content"`
	GroundingMetadata *groundingMetadata `json:"groundingMetadata,omitempty"`
}

type groundingMetadata struct {
	GroundingChunks []groundingChunk `json:"groundingChunks"`
}

type groundingChunk struct {
	Web *webSource `json:"web,omitempty"`
}

type webSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// generateContent performs one model call.
func (c *Client) generateContent(ctx context.Context, reqBody generateRequest) (*generateResponse, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	if c.apiKey != "" {
		endpoint += "?key=" + url.QueryEscape(c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model returned status %d: %s", resp.StatusCode, body)
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &out, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *generateResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	text := ""
	for _, p := range resp.Candidates[0].Content.Parts {
		text += p.Text
	}
	return text
}

// --- schedule generation ---

// ScheduleItem is one block of a generated study program.
type ScheduleItem struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	Type            string `json:"type"` // study or break
	DurationMinutes int    `json:"durationMinutes"`
}

// GenerateSchedule asks the model for a study program broken into
// 45-minute sessions with 15-minute breaks. Failures return an empty list.
func (c *Client) GenerateSchedule(ctx context.Context, topic string, durationHours int, difficulty string) []ScheduleItem {
	prompt := fmt.Sprintf(`Create a study schedule for the topic: %q.
Total duration: %d hours.
Difficulty level: %s.
Break it down into 45-minute study sessions and 15-minute breaks.
Return a JSON array of objects with fields: 'title', 'subtitle', 'type' (study or break), 'durationMinutes'.`,
		topic, durationHours, difficulty)

	itemSchema := &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"title":           {Type: "STRING"},
			"subtitle":        {Type: "STRING"},
			"type":            {Type: "STRING", Enum: []string{"study", "break"}},
			"durationMinutes": {Type: "INTEGER"},
		},
		Required: []string{"title", "type", "durationMinutes"},
	}

	resp, err := c.generateContent(ctx, generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   &schema{Type: "ARRAY", Items: itemSchema},
		},
	})
	if err != nil {
		log.Printf("Schedule generation failed: %v", err)
		return nil
	}

	items, err := parseScheduleJSON(responseText(resp))
	if err != nil {
		log.Printf("Schedule generation returned malformed JSON: %v", err)
		return nil
	}
	return items
}

func parseScheduleJSON(text string) ([]ScheduleItem, error) {
	if text == "" {
		return nil, nil
	}
	var items []ScheduleItem
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// --- assistant ---

// AskAssistant answers a free-form study question. Failures return a
// placeholder string the UI can show as-is.
func (c *Client) AskAssistant(ctx context.Context, question string) string {
	prompt := "You are a helpful study assistant. Answer this question concisely for a student: " + question

	resp, err := c.generateContent(ctx, generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		log.Printf("Assistant call failed: %v", err)
		return "Sorry, I encountered an error."
	}
	if text := responseText(resp); text != "" {
		return text
	}
	return "I couldn't generate an answer."
}

// --- quiz generation ---

// QuizKind selects between multiple-choice and open-ended questions.
type QuizKind string

const (
	QuizKindTest    QuizKind = "test"
	QuizKindClassic QuizKind = "classic"
)

// QuizQuestion is one generated question. Options is empty and
// CorrectIndex -1 for classic questions; Explanation then holds the model
// answer.
type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
	Kind         QuizKind `json:"type"`
}

// GenerateQuiz asks the model for five questions about a subject at the
// given level. Failures return an empty list.
func (c *Client) GenerateQuiz(ctx context.Context, subject, level string, kind QuizKind) []QuizQuestion {
	var prompt string
	var itemSchema *schema

	if kind == QuizKindTest {
		prompt = fmt.Sprintf(`Generate 5 multiple choice questions about %q at a %q level.
Return JSON with: 'question', 'options' (array of 4 strings), 'correctIndex' (0-3), 'explanation'.`, subject, level)
		itemSchema = &schema{
			Type: "OBJECT",
			Properties: map[string]*schema{
				"question":     {Type: "STRING"},
				"options":      {Type: "ARRAY", Items: &schema{Type: "STRING"}},
				"correctIndex": {Type: "INTEGER"},
				"explanation":  {Type: "STRING"},
				"type":         {Type: "STRING", Enum: []string{"test"}},
			},
			Required: []string{"question", "options", "correctIndex", "explanation"},
		}
	} else {
		prompt = fmt.Sprintf(`Generate 5 classic open-ended exam questions about %q at a %q level.
Return JSON with: 'question', 'explanation' (the model answer). Leave options empty.`, subject, level)
		itemSchema = &schema{
			Type: "OBJECT",
			Properties: map[string]*schema{
				"question":     {Type: "STRING"},
				"options":      {Type: "ARRAY", Items: &schema{Type: "STRING"}},
				"correctIndex": {Type: "INTEGER"},
				"explanation":  {Type: "STRING"},
				"type":         {Type: "STRING", Enum: []string{"classic"}},
			},
			Required: []string{"question", "explanation"},
		}
	}

	resp, err := c.generateContent(ctx, generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   &schema{Type: "ARRAY", Items: itemSchema},
		},
	})
	if err != nil {
		log.Printf("Quiz generation failed: %v", err)
		return nil
	}

	questions, err := parseQuizJSON(responseText(resp), kind)
	if err != nil {
		log.Printf("Quiz generation returned malformed JSON: %v", err)
		return nil
	}
	return questions
}

// parseQuizJSON decodes the question list and normalizes the fields the
// model sometimes leaves out.
func parseQuizJSON(text string, kind QuizKind) ([]QuizQuestion, error) {
	if text == "" {
		return nil, nil
	}

	var raw []struct {
		Question     string   `json:"question"`
		Options      []string `json:"options"`
		CorrectIndex *int     `json:"correctIndex"`
		Explanation  string   `json:"explanation"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, err
	}

	questions := make([]QuizQuestion, 0, len(raw))
	for _, q := range raw {
		question := QuizQuestion{
			Question:     q.Question,
			Options:      q.Options,
			CorrectIndex: -1,
			Explanation:  q.Explanation,
			Kind:         kind,
		}
		if question.Options == nil {
			question.Options = []string{}
		}
		if q.CorrectIndex != nil {
			question.CorrectIndex = *q.CorrectIndex
		}
		questions = append(questions, question)
	}
	return questions, nil
}

// --- homework solver ---

// SolveHomework sends a photographed exercise to the model and returns a
// step-by-step explanation. Failures return a placeholder string.
func (c *Client) SolveHomework(ctx context.Context, image []byte, mimeType string) string {
	resp, err := c.generateContent(ctx, generateRequest{
		Contents: []content{{Parts: []part{
			{InlineData: &inlineData{MIMEType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
			{Text: "Bu resimdeki soruyu veya ödevi adım adım, açıklayıcı bir şekilde çöz. Öğrencinin anlayacağı dilde Türkçe anlat."},
		}}},
	})
	if err != nil {
		log.Printf("Homework solver failed: %v", err)
		return "Bir hata oluştu. Lütfen tekrar dene."
	}
	if text := responseText(resp); text != "" {
		return text
	}
	return "Çözüm üretilemedi."
}

// --- video finder ---

// VideoResource is one recommended tutorial video.
type VideoResource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

const maxVideoResults = 5

// FindVideos asks the search-grounded model for tutorial videos on a
// topic. Results come from the grounding metadata, deduplicated by URI.
func (c *Client) FindVideos(ctx context.Context, topic string) []VideoResource {
	prompt := fmt.Sprintf("Find the best YouTube video tutorials for learning about: %q. Return a list of 3-5 specific video titles and their URLs.", topic)

	resp, err := c.generateContent(ctx, generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		Tools:    []tool{{GoogleSearch: &struct{}{}}},
	})
	if err != nil {
		log.Printf("Video search failed: %v", err)
		return nil
	}
	return videoResources(resp)
}

// videoResources extracts web grounding chunks as video links.
func videoResources(resp *generateResponse) []VideoResource {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}

	seen := make(map[string]bool)
	var resources []VideoResource
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk.Web == nil || seen[chunk.Web.URI] {
			continue
		}
		seen[chunk.Web.URI] = true

		title := chunk.Web.Title
		if title == "" {
			title = "Video Kaynağı"
		}
		resources = append(resources, VideoResource{Title: title, URI: chunk.Web.URI})
		if len(resources) == maxVideoResults {
			break
		}
	}
	return resources
}
