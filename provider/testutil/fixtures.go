package testutil

// Canned backend payloads shared by adapter tests.
const (
	OpenAICompletionJSON = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-3.5-turbo",
  "choices": [
    {
      "index": 0,
      "message": {"role": "assistant", "content": "Argentina won the 2022 World Cup."},
      "finish_reason": "stop",
      "logprobs": null
    }
  ],
  "usage": {"prompt_tokens": 21, "completion_tokens": 9, "total_tokens": 30}
}`

	OpenAIEmptyChoicesJSON = `{
  "id": "chatcmpl-2",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-3.5-turbo",
  "choices": []
}`

	OpenAIErrorJSON = `{"error": {"message": "Incorrect API key provided.", "type": "invalid_request_error", "param": null, "code": "invalid_api_key"}}`

	GeminiResponseJSON = `{
  "candidates": [
    {
      "content": {"role": "model", "parts": [{"text": "Real Madrid have won 15 European Cups."}]},
      "finishReason": "STOP"
    }
  ]
}`

	OllamaGenerateJSON = `{"model":"llama3","created_at":"2024-05-01T10:00:00Z","response":"42","done":true,"eval_count":3}`

	OllamaTagsJSON = `{"models":[{"name":"a"},{"name":"b"}]}`
)
