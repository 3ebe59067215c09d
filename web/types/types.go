package types

// WebhookRequest accepts both the flat shape posted by the chat page and a
// Dialogflow-style fulfillment payload.
type WebhookRequest struct {
	Message     string `json:"message"`
	Question    string `json:"question"`
	QueryResult struct {
		QueryText string `json:"queryText"`
	} `json:"queryResult"`
}

// Text returns the question text, whichever field carried it.
func (r *WebhookRequest) Text() string {
	if r.Message != "" {
		return r.Message
	}
	if r.Question != "" {
		return r.Question
	}
	return r.QueryResult.QueryText
}

// WebhookResponse is the webhook reply. FulfillmentText duplicates Reply so
// dialogue platforms can consume the response directly; HTML is a rendered
// fragment for the chat page.
type WebhookResponse struct {
	Reply           string `json:"reply"`
	HTML            string `json:"html,omitempty"`
	FulfillmentText string `json:"fulfillmentText"`
}
